package appointment

import (
	"context"

	domain "github.com/agendaplus/booking-api/internal/domain/booking"
	"github.com/agendaplus/booking-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}
