package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
	"github.com/agendaplus/booking-api/internal/timezone"
)

// ======================================================
// BOOKING VALIDATOR
// ======================================================

// Validator decides whether a proposed or updated appointment slot is
// admissible. It only reads from the store; persistence stays with the
// caller.
type Validator struct {
	store Store
	now   func() time.Time
}

func NewValidator(store Store) *Validator {
	return &Validator{
		store: store,
		now:   timezone.Now,
	}
}

// WithClock overrides the business clock. Test hook.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// ValidatedAppointment holds the entities resolved during validation so
// the caller can persist without re-fetching.
type ValidatedAppointment struct {
	Customer *models.Customer
	Employee *models.Employee
	Services []models.Service
}

// ======================================================
// CREATE PATH
// ======================================================

// ValidateNew runs the full admission check for a new appointment:
// existence first, then the temporal window, then slot conflicts for both
// actors. The first failure wins.
func (v *Validator) ValidateNew(
	ctx context.Context,
	date time.Time,
	customerID uint,
	employeeID uint,
	serviceIDs []uint,
) (*ValidatedAppointment, error) {

	customer, err := v.resolveCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	employee, err := v.resolveEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	services, err := v.resolveServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	now := v.now()
	if err := validateDateRange(date, now); err != nil {
		return nil, err
	}
	if err := validateBusinessHours(date); err != nil {
		return nil, err
	}

	if err := v.validateSlotFree(ctx, date, customerID, employeeID, 0); err != nil {
		return nil, err
	}

	return &ValidatedAppointment{
		Customer: customer,
		Employee: employee,
		Services: services,
	}, nil
}

// ======================================================
// UPDATE PATH
// ======================================================

// ValidateUpdate checks a partial update. Only date, employee_id and
// service_ids may change; the appointment's own id is excluded from
// conflict queries. When only the employee changes, the current date is
// re-checked against the new employee's timeline.
func (v *Validator) ValidateUpdate(
	ctx context.Context,
	fields map[string]any,
	currentCustomerID uint,
	currentEmployeeID uint,
	currentDate time.Time,
	appointmentID uint,
) (*ValidatedPatch, error) {

	patch, err := ParsePatch(fields)
	if err != nil {
		return nil, err
	}

	result := &ValidatedPatch{}

	effectiveEmployeeID := currentEmployeeID
	if patch.EmployeeID != nil {
		employee, err := v.resolveEmployee(ctx, *patch.EmployeeID)
		if err != nil {
			return nil, err
		}
		result.Employee = employee
		effectiveEmployeeID = *patch.EmployeeID
	}

	if patch.HasServices() {
		services, err := v.resolveServices(ctx, patch.ServiceIDs)
		if err != nil {
			return nil, err
		}
		result.Services = services
		result.servicesPresent = true
	}

	switch {
	case patch.Date != nil:
		date := *patch.Date
		now := v.now()
		if err := validateDateRange(date, now); err != nil {
			return nil, err
		}
		if err := validateBusinessHours(date); err != nil {
			return nil, err
		}
		if err := v.validateSlotFree(ctx, date, currentCustomerID, effectiveEmployeeID, appointmentID); err != nil {
			return nil, err
		}
		result.Date = &date

	case effectiveEmployeeID != currentEmployeeID && !currentDate.IsZero():
		// Employee swap onto an unchanged date: the new employee must
		// still be free at that time.
		if err := v.validateSlotFree(ctx, currentDate, currentCustomerID, effectiveEmployeeID, appointmentID); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ======================================================
// RESOLUTION / CONFLICT CHECKS
// ======================================================

func (v *Validator) resolveCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := v.store.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, httperr.ErrNotFound(
			"customer_id", fmt.Sprintf("Customer with ID %d not found.", id))
	}
	return customer, nil
}

func (v *Validator) resolveEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := v.store.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, httperr.ErrNotFound(
			"employee_id", fmt.Sprintf("Employee with ID %d not found.", id))
	}
	return employee, nil
}

func (v *Validator) resolveServices(ctx context.Context, serviceIDs []uint) ([]models.Service, error) {
	if len(serviceIDs) == 0 {
		return nil, httperr.ErrInvalidArgument(
			"service_ids", "At least one service is required.")
	}
	if len(serviceIDs) > MaxServicesPerAppointment {
		return nil, httperr.ErrInvalidArgument(
			"service_ids",
			fmt.Sprintf("At most %d services are allowed per appointment.", MaxServicesPerAppointment))
	}

	services := make([]models.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		service, err := v.store.GetService(ctx, id)
		if err != nil {
			return nil, err
		}
		if service == nil {
			return nil, httperr.ErrNotFound(
				"service_ids", fmt.Sprintf("Service with ID %d not found.", id))
		}
		services = append(services, *service)
	}

	return services, nil
}

func (v *Validator) validateSlotFree(
	ctx context.Context,
	date time.Time,
	customerID uint,
	employeeID uint,
	excludeID uint,
) error {

	taken, err := v.store.CustomerHasAppointmentAt(ctx, customerID, date, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrConflict(
			"date", "Customer already has an appointment at this time.")
	}

	taken, err = v.store.EmployeeHasAppointmentAt(ctx, employeeID, date, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrConflict(
			"date", "Employee already has an appointment at this time.")
	}

	return nil
}
