package employee

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/employee"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type UpdateEmployee struct {
	repo      domain.Repository
	validator *domain.Validator
}

func NewUpdateEmployee(repo domain.Repository, validator *domain.Validator) *UpdateEmployee {
	return &UpdateEmployee{
		repo:      repo,
		validator: validator,
	}
}

func (uc *UpdateEmployee) Execute(
	ctx context.Context,
	employeeID uint,
	fields map[string]any,
) (*models.Employee, error) {

	employee, err := uc.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, httperr.ErrNotFound("employee", "Employee not found.")
	}

	patch, err := uc.validator.ValidateUpdate(ctx, fields, employee.ID)
	if err != nil {
		return nil, err
	}

	return uc.repo.Update(ctx, employee, patch)
}
