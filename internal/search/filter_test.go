// AngelaMos | 2026
// filter_test.go

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFranchise struct {
	name     string
	category string
	country  string
	state    string
	min      *int64
	max      *int64
}

func (f testFranchise) FilterCategory() string { return f.category }
func (f testFranchise) FilterCountry() string  { return f.country }
func (f testFranchise) FilterState() string    { return f.state }

func (f testFranchise) InvestmentBounds() (int64, int64, bool) {
	if f.min == nil || f.max == nil {
		return 0, 0, false
	}
	return *f.min, *f.max, true
}

type testBusiness struct {
	name     string
	category string
	country  string
	state    string
	price    *int64
}

func (b testBusiness) FilterCategory() string { return b.category }
func (b testBusiness) FilterCountry() string  { return b.country }
func (b testBusiness) FilterState() string    { return b.state }

func (b testBusiness) FilterPrice() (int64, bool) {
	if b.price == nil {
		return 0, false
	}
	return *b.price, true
}

func i64(v int64) *int64 { return &v }

func names[T interface{ Name() string }](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name()
	}
	return out
}

func (f testFranchise) Name() string { return f.name }
func (b testBusiness) Name() string  { return b.name }

func sampleFranchises() []testFranchise {
	return []testFranchise{
		{name: "coffee", category: "Food & Beverage", country: "USA", state: "Texas", min: i64(40_000), max: i64(150_000)},
		{name: "gym", category: "Fitness", country: "USA", state: "California", min: i64(250_000), max: i64(600_000)},
		{name: "tutoring", category: "Education", country: "Canada", state: "Ontario"},
	}
}

func TestFranchisesNoCriteriaReturnsAll(t *testing.T) {
	items := sampleFranchises()

	tests := []struct {
		name     string
		criteria FranchiseCriteria
	}{
		{"empty criteria", FranchiseCriteria{}},
		{"all sentinels", FranchiseCriteria{
			Category:   AllCategories,
			Country:    AnyCountry,
			State:      AnyState,
			PriceRange: AnyPriceRange,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Franchises(items, tt.criteria)
			assert.Equal(t, names(items), names(got))
		})
	}
}

func TestFranchisesCategoryExactMatch(t *testing.T) {
	items := sampleFranchises()

	got := Franchises(items, FranchiseCriteria{Category: "Food & Beverage"})
	require.Len(t, got, 1)
	assert.Equal(t, "coffee", got[0].name)

	// Matching is case-sensitive.
	got = Franchises(items, FranchiseCriteria{Category: "food & beverage"})
	assert.Empty(t, got)
}

func TestFranchisesInvestmentRangeOverlap(t *testing.T) {
	items := sampleFranchises()

	tests := []struct {
		name       string
		priceRange string
		want       []string
	}{
		// 40000..150000 overlaps 50000..200000.
		{"overlapping window", "$50K-$200K", []string{"coffee", "tutoring"}},
		// 40000..150000 does not reach 200000..500000; 250000..600000 does.
		{"disjoint below", "$200K-$500K", []string{"gym", "tutoring"}},
		{"millions suffix", "$1M-$2M", []string{"tutoring"}},
		{"touching boundary", "$150K-$300K", []string{"coffee", "gym", "tutoring"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Franchises(items, FranchiseCriteria{PriceRange: tt.priceRange})
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFranchisesUnboundedListingNeverExcludedByRange(t *testing.T) {
	items := sampleFranchises()

	got := Franchises(items, FranchiseCriteria{PriceRange: "$10M-$20M"})
	require.Len(t, got, 1)
	assert.Equal(t, "tutoring", got[0].name)
}

func TestFranchisesMalformedRangeIsNoOp(t *testing.T) {
	items := sampleFranchises()

	tests := []string{
		"abc-xyz",
		"50000",
		"-200K",
		"50K-",
		"",
	}

	for _, priceRange := range tests {
		t.Run(priceRange, func(t *testing.T) {
			got := Franchises(items, FranchiseCriteria{PriceRange: priceRange})
			assert.Equal(t, names(items), names(got))
		})
	}
}

func TestFranchisesIdempotent(t *testing.T) {
	items := sampleFranchises()
	criteria := FranchiseCriteria{Country: "USA", PriceRange: "$50K-$200K"}

	once := Franchises(items, criteria)
	twice := Franchises(once, criteria)

	assert.Equal(t, names(once), names(twice))
}

func TestFranchisesCombinedCriteria(t *testing.T) {
	items := sampleFranchises()

	got := Franchises(items, FranchiseCriteria{
		Category:   "Fitness",
		Country:    "USA",
		State:      "California",
		PriceRange: "$300K-$1M",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "gym", got[0].name)
}

func sampleBusinesses() []testBusiness {
	return []testBusiness{
		{name: "laundromat", category: "Services", country: "USA", state: "Texas", price: i64(125_000)},
		{name: "bakery", category: "Food & Beverage", country: "USA", state: "Texas", price: i64(90_000)},
		{name: "consultancy", category: "Services", country: "UK", state: "London"},
	}
}

func TestBusinessesMaxPriceBoundary(t *testing.T) {
	items := sampleBusinesses()

	tests := []struct {
		name     string
		maxPrice int64
		want     []string
	}{
		{"at the asking price", 125_000, []string{"laundromat", "bakery", "consultancy"}},
		{"one below", 124_999, []string{"bakery", "consultancy"}},
		{"zero means unset", 0, []string{"laundromat", "bakery", "consultancy"}},
		{"negative means unset", -5, []string{"laundromat", "bakery", "consultancy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Businesses(items, BusinessCriteria{MaxPrice: tt.maxPrice})
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestBusinessesUnpricedNeverExcluded(t *testing.T) {
	items := sampleBusinesses()

	got := Businesses(items, BusinessCriteria{MaxPrice: 1})
	require.Len(t, got, 1)
	assert.Equal(t, "consultancy", got[0].name)
}

func TestBusinessesScalarCriteria(t *testing.T) {
	items := sampleBusinesses()

	got := Businesses(items, BusinessCriteria{
		Category: "Services",
		Country:  "USA",
		State:    "Texas",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "laundromat", got[0].name)
}

func TestBusinessesSentinelsIgnored(t *testing.T) {
	items := sampleBusinesses()

	got := Businesses(items, BusinessCriteria{
		Category: AllCategories,
		Country:  AnyCountry,
		State:    AnyState,
	})

	assert.Equal(t, names(items), names(got))
}

func TestParseInvestmentRange(t *testing.T) {
	tests := []struct {
		input   string
		want    InvestmentRange
		applied bool
	}{
		{"$50K-$200K", InvestmentRange{Min: 50_000, Max: 200_000}, true},
		{"50k-200k", InvestmentRange{Min: 50_000, Max: 200_000}, true},
		{"$1M-$5M", InvestmentRange{Min: 1_000_000, Max: 5_000_000}, true},
		{"10000-50000", InvestmentRange{Min: 10_000, Max: 50_000}, true},
		{"$1,500K-$2,000K", InvestmentRange{Min: 1_500_000, Max: 2_000_000}, true},
		{"Price Range", InvestmentRange{}, false},
		{"", InvestmentRange{}, false},
		{"abc-xyz", InvestmentRange{}, false},
		{"100K", InvestmentRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, applied := ParseInvestmentRange(tt.input)
			assert.Equal(t, tt.applied, applied)
			if tt.applied {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	window := InvestmentRange{Min: 50_000, Max: 200_000}

	assert.True(t, window.Overlaps(40_000, 150_000))
	assert.True(t, window.Overlaps(200_000, 500_000))
	assert.True(t, window.Overlaps(10_000, 50_000))
	assert.False(t, window.Overlaps(200_001, 500_000))
	assert.False(t, window.Overlaps(10_000, 49_999))
}
