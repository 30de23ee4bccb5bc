package customer

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/customer"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type GetCustomer struct {
	repo domain.Repository
}

func NewGetCustomer(repo domain.Repository) *GetCustomer {
	return &GetCustomer{repo: repo}
}

func (uc *GetCustomer) Execute(ctx context.Context, customerID uint) (*models.Customer, error) {
	customer, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, httperr.ErrNotFound("customer", "Customer not found.")
	}
	return customer, nil
}
