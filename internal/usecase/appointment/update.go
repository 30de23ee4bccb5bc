package appointment

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/booking"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type UpdateAppointment struct {
	repo      domain.Repository
	validator *domain.Validator
}

func NewUpdateAppointment(repo domain.Repository, validator *domain.Validator) *UpdateAppointment {
	return &UpdateAppointment{
		repo:      repo,
		validator: validator,
	}
}

// Execute applies a partial update. The raw field map goes through the
// validator's whitelist; the customer can never change.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	fields map[string]any,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrNotFound("appointment", "Appointment not found.")
	}

	patch, err := uc.validator.ValidateUpdate(
		ctx,
		fields,
		ap.CustomerID,
		ap.EmployeeID,
		ap.Date,
		ap.ID,
	)
	if err != nil {
		return nil, err
	}

	return uc.repo.UpdateAppointment(ctx, ap, patch)
}
