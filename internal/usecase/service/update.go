package service

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/service"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type UpdateService struct {
	repo      domain.Repository
	validator *domain.Validator
}

func NewUpdateService(repo domain.Repository, validator *domain.Validator) *UpdateService {
	return &UpdateService{
		repo:      repo,
		validator: validator,
	}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	serviceID uint,
	fields map[string]any,
) (*models.Service, error) {

	service, err := uc.repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, httperr.ErrNotFound("service", "Service not found.")
	}

	patch, err := uc.validator.ValidateUpdate(ctx, fields, service.ID)
	if err != nil {
		return nil, err
	}

	return uc.repo.Update(ctx, service, patch)
}
