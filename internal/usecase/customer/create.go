package customer

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/customer"
	"github.com/agendaplus/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateCustomerInput struct {
	Name        string
	Email       string
	PhoneNumber string
}

// ======================================================
// USE CASE
// ======================================================

type CreateCustomer struct {
	repo      domain.Repository
	validator *domain.Validator
}

func NewCreateCustomer(repo domain.Repository, validator *domain.Validator) *CreateCustomer {
	return &CreateCustomer{
		repo:      repo,
		validator: validator,
	}
}

func (uc *CreateCustomer) Execute(
	ctx context.Context,
	in CreateCustomerInput,
) (*models.Customer, error) {

	if err := uc.validator.ValidateNew(ctx, in.Email, in.PhoneNumber); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}

	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}
