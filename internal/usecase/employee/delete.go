package employee

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/employee"
	"github.com/agendaplus/booking-api/internal/httperr"
)

type DeleteEmployee struct {
	repo domain.Repository
}

func NewDeleteEmployee(repo domain.Repository) *DeleteEmployee {
	return &DeleteEmployee{repo: repo}
}

// Execute refuses to delete an employee who is still booked on future
// appointments.
func (uc *DeleteEmployee) Execute(ctx context.Context, employeeID uint) error {
	employee, err := uc.repo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return httperr.ErrNotFound("employee", "Employee not found.")
	}

	hasFuture, err := uc.repo.HasFutureAppointments(ctx, employee.ID)
	if err != nil {
		return err
	}
	if hasFuture {
		return httperr.ErrConflict(
			"employee", "Employee has upcoming appointments and cannot be deleted.")
	}

	return uc.repo.Delete(ctx, employee)
}
