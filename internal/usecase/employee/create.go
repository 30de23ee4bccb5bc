package employee

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/employee"
	"github.com/agendaplus/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateEmployeeInput struct {
	Name        string
	Email       string
	PhoneNumber string
	ServiceIDs  []uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateEmployee struct {
	repo      domain.Repository
	validator *domain.Validator
}

func NewCreateEmployee(repo domain.Repository, validator *domain.Validator) *CreateEmployee {
	return &CreateEmployee{
		repo:      repo,
		validator: validator,
	}
}

func (uc *CreateEmployee) Execute(
	ctx context.Context,
	in CreateEmployeeInput,
) (*models.Employee, error) {

	services, err := uc.validator.ValidateNew(ctx, in.Email, in.PhoneNumber, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Status:      string(models.EmployeeAvailable),
		Services:    services,
	}

	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}
