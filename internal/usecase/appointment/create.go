package appointment

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/booking"
	"github.com/agendaplus/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Date       string
	CustomerID uint
	EmployeeID uint
	ServiceIDs []uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	validator *domain.Validator
}

func NewCreateAppointment(repo domain.Repository, validator *domain.Validator) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		validator: validator,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	date, err := domain.ParseDateTime(in.Date)
	if err != nil {
		return nil, err
	}

	validated, err := uc.validator.ValidateNew(ctx, date, in.CustomerID, in.EmployeeID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Date:       date,
		CustomerID: in.CustomerID,
		EmployeeID: in.EmployeeID,
		Services:   validated.Services,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	ap.Customer = *validated.Customer
	ap.Employee = *validated.Employee

	return ap, nil
}
