package employee

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/employee"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type GetEmployee struct {
	repo domain.Repository
}

func NewGetEmployee(repo domain.Repository) *GetEmployee {
	return &GetEmployee{repo: repo}
}

func (uc *GetEmployee) Execute(ctx context.Context, employeeID uint) (*models.Employee, error) {
	employee, err := uc.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, httperr.ErrNotFound("employee", "Employee not found.")
	}
	return employee, nil
}
