package customer

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/customer"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type UpdateCustomer struct {
	repo      domain.Repository
	validator *domain.Validator
}

func NewUpdateCustomer(repo domain.Repository, validator *domain.Validator) *UpdateCustomer {
	return &UpdateCustomer{
		repo:      repo,
		validator: validator,
	}
}

func (uc *UpdateCustomer) Execute(
	ctx context.Context,
	customerID uint,
	fields map[string]any,
) (*models.Customer, error) {

	customer, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, httperr.ErrNotFound("customer", "Customer not found.")
	}

	patch, err := uc.validator.ValidateUpdate(ctx, fields, customer.ID)
	if err != nil {
		return nil, err
	}

	return uc.repo.Update(ctx, customer, patch)
}
