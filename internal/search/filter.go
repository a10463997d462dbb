// AngelaMos | 2026
// filter.go

// Package search evaluates listing filters in memory, against rows the
// repositories have already restricted to active entries. Filtering is
// pure and order-preserving: the output is always a subsequence of the
// input.
package search

import (
	"strconv"
	"strings"
)

// Sentinel filter values sent by the browse UI's default dropdown
// options. They mean "criterion not applied", never a literal match.
const (
	AllCategories = "All Business Categories"
	AnyCountry    = "Any Country"
	AnyState      = "Any State"
	AnyPriceRange = "Price Range"
)

type FranchiseCriteria struct {
	Category   string
	Country    string
	State      string
	PriceRange string
}

type BusinessCriteria struct {
	Category string
	Country  string
	State    string
	// MaxPrice <= 0 means the price criterion is not applied.
	MaxPrice int64
}

// Listing is the scalar-field surface every filterable entity exposes.
type Listing interface {
	FilterCategory() string
	FilterCountry() string
	FilterState() string
}

// Priced is implemented by listings with an optional asking price.
type Priced interface {
	Listing
	FilterPrice() (int64, bool)
}

// Ranged is implemented by listings with an optional investment range.
type Ranged interface {
	Listing
	InvestmentBounds() (min, max int64, ok bool)
}

// Franchises returns the franchises matching every applied criterion,
// in input order.
func Franchises[T Ranged](items []T, c FranchiseCriteria) []T {
	selected, rangeApplied := ParseInvestmentRange(c.PriceRange)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !scalarsMatch(item, c.Category, c.Country, c.State) {
			continue
		}

		if rangeApplied {
			// Items missing either investment bound are retained
			// unconditionally; the range criterion only ever excludes
			// fully-bounded listings.
			if min, max, ok := item.InvestmentBounds(); ok {
				if !selected.Overlaps(min, max) {
					continue
				}
			}
		}

		out = append(out, item)
	}

	return out
}

// Businesses returns the businesses matching every applied criterion,
// in input order.
func Businesses[T Priced](items []T, c BusinessCriteria) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !scalarsMatch(item, c.Category, c.Country, c.State) {
			continue
		}

		if c.MaxPrice > 0 {
			// A business with no asking price is never excluded by the
			// price criterion.
			if price, ok := item.FilterPrice(); ok && price > c.MaxPrice {
				continue
			}
		}

		out = append(out, item)
	}

	return out
}

func scalarsMatch(item Listing, category, country, state string) bool {
	if applied(category, AllCategories) && item.FilterCategory() != category {
		return false
	}
	if applied(country, AnyCountry) && item.FilterCountry() != country {
		return false
	}
	if applied(state, AnyState) && item.FilterState() != state {
		return false
	}
	return true
}

func applied(value, sentinel string) bool {
	return value != "" && value != sentinel
}

// InvestmentRange is a user-selected budget window in whole currency
// units.
type InvestmentRange struct {
	Min int64
	Max int64
}

// Overlaps reports whether the selected window shares at least one point
// with the listing's [min, max] investment range.
func (r InvestmentRange) Overlaps(min, max int64) bool {
	return min <= r.Max && max >= r.Min
}

// ParseInvestmentRange parses a "<min>-<max>" selection such as
// "$40K-$150K". Each token is its digits with an optional K (thousands)
// or M (millions) multiplier. A missing side, the sentinel value, or a
// token with no digits disables the criterion entirely.
func ParseInvestmentRange(s string) (InvestmentRange, bool) {
	if s == "" || s == AnyPriceRange {
		return InvestmentRange{}, false
	}

	minTok, maxTok, found := strings.Cut(s, "-")
	if !found || minTok == "" || maxTok == "" {
		return InvestmentRange{}, false
	}

	min, ok := parseAmount(minTok)
	if !ok {
		return InvestmentRange{}, false
	}

	max, ok := parseAmount(maxTok)
	if !ok {
		return InvestmentRange{}, false
	}

	return InvestmentRange{Min: min, Max: max}, true
}

func parseAmount(token string) (int64, bool) {
	var digits strings.Builder
	for _, r := range token {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}

	switch {
	case strings.ContainsAny(token, "Kk"):
		return n * 1_000, true
	case strings.ContainsAny(token, "Mm"):
		return n * 1_000_000, true
	default:
		return n, true
	}
}
