package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendaplus/booking-api/internal/domain/service"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type fakeRepo struct {
	services  map[uint]*models.Service
	employees int64
	hasFuture bool
	deleted   []uint
}

func (f *fakeRepo) FindByName(context.Context, string) (*models.Service, error) { return nil, nil }
func (f *fakeRepo) List(context.Context) ([]models.Service, error)              { return nil, nil }
func (f *fakeRepo) Count(context.Context) (int64, error)                        { return 0, nil }
func (f *fakeRepo) Create(context.Context, *models.Service) error               { return nil }

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Service, error) {
	return f.services[id], nil
}

func (f *fakeRepo) Update(_ context.Context, s *models.Service, _ *domain.Patch) (*models.Service, error) {
	return s, nil
}

func (f *fakeRepo) Delete(_ context.Context, s *models.Service) error {
	f.deleted = append(f.deleted, s.ID)
	return nil
}

func (f *fakeRepo) CountEmployeesUsing(context.Context, uint) (int64, error) {
	return f.employees, nil
}

func (f *fakeRepo) HasFutureAppointments(context.Context, uint) (bool, error) {
	return f.hasFuture, nil
}

func TestDeleteService_OK(t *testing.T) {
	repo := &fakeRepo{
		services: map[uint]*models.Service{1: {ID: 1, Name: "Corte"}},
	}
	uc := NewDeleteService(repo)

	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, repo.deleted)
}

func TestDeleteService_NotFound(t *testing.T) {
	uc := NewDeleteService(&fakeRepo{})

	err := uc.Execute(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.EqualError(t, err, "Service not found.")
}

func TestDeleteService_BlockedByEmployees(t *testing.T) {
	repo := &fakeRepo{
		services:  map[uint]*models.Service{1: {ID: 1}},
		employees: 2,
	}
	uc := NewDeleteService(repo)

	err := uc.Execute(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.EqualError(t, err, "Service is still performed by employees and cannot be deleted.")
	assert.Empty(t, repo.deleted)
}

func TestDeleteService_BlockedByUpcomingAppointments(t *testing.T) {
	repo := &fakeRepo{
		services:  map[uint]*models.Service{1: {ID: 1}},
		hasFuture: true,
	}
	uc := NewDeleteService(repo)

	err := uc.Execute(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.EqualError(t, err, "Service is used by upcoming appointments and cannot be deleted.")
	assert.Empty(t, repo.deleted)
}
