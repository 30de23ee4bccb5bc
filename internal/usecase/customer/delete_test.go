package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendaplus/booking-api/internal/domain/customer"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type fakeRepo struct {
	customers map[uint]*models.Customer
	hasFuture bool
	deleted   []uint
}

func (f *fakeRepo) FindByEmail(context.Context, string) (*models.Customer, error) { return nil, nil }
func (f *fakeRepo) FindByPhone(context.Context, string) (*models.Customer, error) { return nil, nil }
func (f *fakeRepo) List(context.Context) ([]models.Customer, error)               { return nil, nil }
func (f *fakeRepo) Count(context.Context) (int64, error)                          { return 0, nil }
func (f *fakeRepo) Create(context.Context, *models.Customer) error                { return nil }

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeRepo) Update(_ context.Context, c *models.Customer, _ *domain.Patch) (*models.Customer, error) {
	return c, nil
}

func (f *fakeRepo) Delete(_ context.Context, c *models.Customer) error {
	f.deleted = append(f.deleted, c.ID)
	return nil
}

func (f *fakeRepo) HasFutureAppointments(context.Context, uint) (bool, error) {
	return f.hasFuture, nil
}

func TestDeleteCustomer_OK(t *testing.T) {
	repo := &fakeRepo{
		customers: map[uint]*models.Customer{1: {ID: 1, Name: "Ana"}},
	}
	uc := NewDeleteCustomer(repo)

	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, repo.deleted)
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	uc := NewDeleteCustomer(&fakeRepo{})

	err := uc.Execute(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.EqualError(t, err, "Customer not found.")
}

func TestDeleteCustomer_BlockedByUpcomingAppointments(t *testing.T) {
	repo := &fakeRepo{
		customers: map[uint]*models.Customer{1: {ID: 1}},
		hasFuture: true,
	}
	uc := NewDeleteCustomer(repo)

	err := uc.Execute(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.EqualError(t, err, "Customer has upcoming appointments and cannot be deleted.")
	assert.Empty(t, repo.deleted)
}
