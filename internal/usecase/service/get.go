package service

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/service"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, serviceID uint) (*models.Service, error) {
	service, err := uc.repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, httperr.ErrNotFound("service", "Service not found.")
	}
	return service, nil
}
