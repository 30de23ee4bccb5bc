package service

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/service"
	"github.com/agendaplus/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateServiceInput struct {
	Name   string
	Price  int
	Status string
}

// ======================================================
// USE CASE
// ======================================================

type CreateService struct {
	repo      domain.Repository
	validator *domain.Validator
}

func NewCreateService(repo domain.Repository, validator *domain.Validator) *CreateService {
	return &CreateService{
		repo:      repo,
		validator: validator,
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	in CreateServiceInput,
) (*models.Service, error) {

	if err := uc.validator.ValidateNew(ctx, in.Name, in.Price, in.Status); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = string(models.ServiceAvailable)
	}

	service := &models.Service{
		Name:   in.Name,
		Price:  in.Price,
		Status: status,
	}

	if err := uc.repo.Create(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}
