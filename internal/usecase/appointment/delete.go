package appointment

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/booking"
	"github.com/agendaplus/booking-api/internal/httperr"
)

type DeleteAppointment struct {
	repo domain.Repository
}

func NewDeleteAppointment(repo domain.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, appointmentID uint) error {
	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if ap == nil {
		return httperr.ErrNotFound("appointment", "Appointment not found.")
	}

	return uc.repo.DeleteAppointment(ctx, ap)
}
