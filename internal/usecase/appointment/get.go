package appointment

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/booking"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrNotFound("appointment", "Appointment not found.")
	}
	return ap, nil
}
