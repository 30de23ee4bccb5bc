package customer

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/customer"
	"github.com/agendaplus/booking-api/internal/httperr"
)

type DeleteCustomer struct {
	repo domain.Repository
}

func NewDeleteCustomer(repo domain.Repository) *DeleteCustomer {
	return &DeleteCustomer{repo: repo}
}

// Execute refuses to delete a customer who still has appointments booked
// in the future; past appointments are no obstacle.
func (uc *DeleteCustomer) Execute(ctx context.Context, customerID uint) error {
	customer, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return httperr.ErrNotFound("customer", "Customer not found.")
	}

	hasFuture, err := uc.repo.HasFutureAppointments(ctx, customer.ID)
	if err != nil {
		return err
	}
	if hasFuture {
		return httperr.ErrConflict(
			"customer", "Customer has upcoming appointments and cannot be deleted.")
	}

	return uc.repo.Delete(ctx, customer)
}
