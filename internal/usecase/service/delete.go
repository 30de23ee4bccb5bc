package service

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/service"
	"github.com/agendaplus/booking-api/internal/httperr"
)

type DeleteService struct {
	repo domain.Repository
}

func NewDeleteService(repo domain.Repository) *DeleteService {
	return &DeleteService{repo: repo}
}

// Execute refuses to delete a service that employees still perform or
// that future appointments still reference.
func (uc *DeleteService) Execute(ctx context.Context, serviceID uint) error {
	service, err := uc.repo.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if service == nil {
		return httperr.ErrNotFound("service", "Service not found.")
	}

	employees, err := uc.repo.CountEmployeesUsing(ctx, service.ID)
	if err != nil {
		return err
	}
	if employees > 0 {
		return httperr.ErrConflict(
			"service", "Service is still performed by employees and cannot be deleted.")
	}

	hasFuture, err := uc.repo.HasFutureAppointments(ctx, service.ID)
	if err != nil {
		return err
	}
	if hasFuture {
		return httperr.ErrConflict(
			"service", "Service is used by upcoming appointments and cannot be deleted.")
	}

	return uc.repo.Delete(ctx, service)
}
