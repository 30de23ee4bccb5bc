package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendaplus/booking-api/internal/domain/employee"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type fakeRepo struct {
	employees map[uint]*models.Employee
	hasFuture bool
	deleted   []uint
}

func (f *fakeRepo) FindByEmail(context.Context, string) (*models.Employee, error) { return nil, nil }
func (f *fakeRepo) FindByPhone(context.Context, string) (*models.Employee, error) { return nil, nil }
func (f *fakeRepo) List(context.Context) ([]models.Employee, error)               { return nil, nil }
func (f *fakeRepo) Count(context.Context) (int64, error)                          { return 0, nil }
func (f *fakeRepo) Create(context.Context, *models.Employee) error                { return nil }

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Employee, error) {
	return f.employees[id], nil
}

func (f *fakeRepo) Update(_ context.Context, e *models.Employee, _ *domain.Patch) (*models.Employee, error) {
	return e, nil
}

func (f *fakeRepo) Delete(_ context.Context, e *models.Employee) error {
	f.deleted = append(f.deleted, e.ID)
	return nil
}

func (f *fakeRepo) HasFutureAppointments(context.Context, uint) (bool, error) {
	return f.hasFuture, nil
}

func TestDeleteEmployee_OK(t *testing.T) {
	repo := &fakeRepo{
		employees: map[uint]*models.Employee{1: {ID: 1, Name: "Bruna"}},
	}
	uc := NewDeleteEmployee(repo)

	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, repo.deleted)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	uc := NewDeleteEmployee(&fakeRepo{})

	err := uc.Execute(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.EqualError(t, err, "Employee not found.")
}

func TestDeleteEmployee_BlockedByUpcomingAppointments(t *testing.T) {
	repo := &fakeRepo{
		employees: map[uint]*models.Employee{1: {ID: 1}},
		hasFuture: true,
	}
	uc := NewDeleteEmployee(repo)

	err := uc.Execute(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.EqualError(t, err, "Employee has upcoming appointments and cannot be deleted.")
	assert.Empty(t, repo.deleted)
}
