package booking

import (
	"context"
	"time"

	"github.com/agendaplus/booking-api/internal/models"
)

// Store is the read side the validator needs: entity lookups plus slot
// queries. Lookups return (nil, nil) when the record is absent.
type Store interface {
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// CustomerHasAppointmentAt reports whether the customer already holds
	// the exact slot. excludeID > 0 leaves that appointment out of the
	// check so an update never conflicts with itself.
	CustomerHasAppointmentAt(ctx context.Context, customerID uint, date time.Time, excludeID uint) (bool, error)
	EmployeeHasAppointmentAt(ctx context.Context, employeeID uint, date time.Time, excludeID uint) (bool, error)
}

// Repository adds the persistence side used by the appointment use cases.
type Repository interface {
	Store

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	CountAppointments(ctx context.Context) (int64, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment, patch *ValidatedPatch) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, ap *models.Appointment) error
}
