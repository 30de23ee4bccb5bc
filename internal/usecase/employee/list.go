package employee

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/employee"
	"github.com/agendaplus/booking-api/internal/models"
)

type ListEmployees struct {
	repo domain.Repository
}

func NewListEmployees(repo domain.Repository) *ListEmployees {
	return &ListEmployees{repo: repo}
}

func (uc *ListEmployees) Execute(ctx context.Context) ([]models.Employee, error) {
	return uc.repo.List(ctx)
}
