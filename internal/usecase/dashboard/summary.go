package dashboard

import (
	"context"

	bookingdomain "github.com/agendaplus/booking-api/internal/domain/booking"
	customerdomain "github.com/agendaplus/booking-api/internal/domain/customer"
	employeedomain "github.com/agendaplus/booking-api/internal/domain/employee"
	servicedomain "github.com/agendaplus/booking-api/internal/domain/service"
)

type Summary struct {
	Customers    int64 `json:"customers"`
	Employees    int64 `json:"employees"`
	Services     int64 `json:"services"`
	Appointments int64 `json:"appointments"`
}

type GetSummary struct {
	customers    customerdomain.Repository
	employees    employeedomain.Repository
	services     servicedomain.Repository
	appointments bookingdomain.Repository
}

func NewGetSummary(
	customers customerdomain.Repository,
	employees employeedomain.Repository,
	services servicedomain.Repository,
	appointments bookingdomain.Repository,
) *GetSummary {
	return &GetSummary{
		customers:    customers,
		employees:    employees,
		services:     services,
		appointments: appointments,
	}
}

func (uc *GetSummary) Execute(ctx context.Context) (*Summary, error) {
	customers, err := uc.customers.Count(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := uc.employees.Count(ctx)
	if err != nil {
		return nil, err
	}
	services, err := uc.services.Count(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := uc.appointments.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Customers:    customers,
		Employees:    employees,
		Services:     services,
		Appointments: appointments,
	}, nil
}
