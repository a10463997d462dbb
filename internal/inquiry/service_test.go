// AngelaMos | 2026
// service_test.go

package inquiry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b2bmarket/backend/internal/core"
)

type fakeRepo struct {
	inquiries map[int64]*Inquiry
	nextID    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{inquiries: map[int64]*Inquiry{}, nextID: 1}
}

func (f *fakeRepo) List(_ context.Context) ([]Inquiry, error) {
	out := []Inquiry{}
	for _, i := range f.inquiries {
		out = append(out, *i)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Inquiry, error) {
	i, ok := f.inquiries[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return i, nil
}

func (f *fakeRepo) Create(_ context.Context, i *Inquiry) (*Inquiry, error) {
	stored := *i
	stored.ID = f.nextID
	stored.Status = StatusPending
	f.inquiries[stored.ID] = &stored
	f.nextID++
	return &stored, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status string) (*Inquiry, error) {
	i, ok := f.inquiries[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	i.Status = status
	return i, nil
}

func TestCreateStartsPending(t *testing.T) {
	svc := NewService(newFakeRepo())

	subject := "Coffee franchise"
	created, err := svc.Create(context.Background(), CreateInquiry{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Subject: &subject,
		Message: "Is this still available?",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, created.Status)
	assert.NotZero(t, created.ID)
}

func TestUpdateStatusValidTransitions(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInquiry{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Message: "Question",
	})
	require.NoError(t, err)

	for _, status := range []string{StatusReplied, StatusClosed, StatusPending} {
		updated, err := svc.UpdateStatus(context.Background(), created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.UpdateStatus(context.Background(), 1, "archived")
	require.Error(t, err)

	var appErr *core.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Status)
}

func TestUpdateStatusUnknownInquiry(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.UpdateStatus(context.Background(), 42, StatusReplied)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
