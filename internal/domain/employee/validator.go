package employee

import (
	"context"
	"fmt"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
	"github.com/agendaplus/booking-api/internal/phone"
)

// Store covers the employee lookups the validator needs. Lookups return
// (nil, nil) when absent.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*models.Employee, error)
}

// ServiceCatalog is the slice of the service store the employee validator
// depends on: an employee must reference at least one registered service.
type ServiceCatalog interface {
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
}

// Repository adds persistence for the employee use cases.
type Repository interface {
	Store

	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee, patch *Patch) (*models.Employee, error)
	Delete(ctx context.Context, employee *models.Employee) error
	HasFutureAppointments(ctx context.Context, employeeID uint) (bool, error)
}

// Patch is the typed update whitelist. Services keeps nil (absent)
// distinct from an empty replacement list.
type Patch struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Status      *string
	Services    []models.Service

	servicesPresent bool
}

func (p *Patch) HasServices() bool {
	return p.servicesPresent
}

type Validator struct {
	store    Store
	services ServiceCatalog
	phones   phone.Verifier
}

func NewValidator(store Store, services ServiceCatalog, phones phone.Verifier) *Validator {
	return &Validator{store: store, services: services, phones: phones}
}

// ValidateNew enforces uniqueness and phone verification, and requires
// the service catalog to be non-empty before any employee can exist.
// Returns the resolved services to associate.
func (v *Validator) ValidateNew(
	ctx context.Context,
	email string,
	phoneNumber string,
	serviceIDs []uint,
) ([]models.Service, error) {

	if err := v.validateEmailUnique(ctx, email, 0); err != nil {
		return nil, err
	}

	count, err := v.services.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, httperr.ErrUnprocessable(
			"service", "A service must be registered before registering an employee.")
	}

	if err := v.validatePhoneUnique(ctx, phoneNumber, 0); err != nil {
		return nil, err
	}
	if err := phone.VerifyBRCellphone(ctx, v.phones, phoneNumber); err != nil {
		return nil, err
	}

	return v.resolveServices(ctx, serviceIDs)
}

// ValidateUpdate filters the payload down to the update whitelist, with
// self-exemption on the uniqueness re-checks.
func (v *Validator) ValidateUpdate(ctx context.Context, fields map[string]any, currentID uint) (*Patch, error) {
	patch := &Patch{}
	found := false

	if name, ok, err := stringField(fields, "name"); err != nil {
		return nil, err
	} else if ok {
		patch.Name = &name
		found = true
	}

	if email, ok, err := stringField(fields, "email"); err != nil {
		return nil, err
	} else if ok {
		patch.Email = &email
		found = true
	}

	if phoneNumber, ok, err := stringField(fields, "phone_number"); err != nil {
		return nil, err
	} else if ok {
		patch.PhoneNumber = &phoneNumber
		found = true
	}

	if status, ok, err := stringField(fields, "status"); err != nil {
		return nil, err
	} else if ok {
		patch.Status = &status
		found = true
	}

	serviceIDs, servicesPresent, err := idListField(fields, "service_ids")
	if err != nil {
		return nil, err
	}
	if servicesPresent {
		found = true
	}

	if !found {
		return nil, httperr.ErrInvalidArgument("", "No valid fields to update.")
	}

	if patch.Email != nil {
		if err := v.validateEmailUnique(ctx, *patch.Email, currentID); err != nil {
			return nil, err
		}
	}

	if patch.PhoneNumber != nil {
		if err := v.validatePhoneUnique(ctx, *patch.PhoneNumber, currentID); err != nil {
			return nil, err
		}
		if err := phone.VerifyBRCellphone(ctx, v.phones, *patch.PhoneNumber); err != nil {
			return nil, err
		}
	}

	if patch.Status != nil && !models.ValidEmployeeStatus(*patch.Status) {
		return nil, httperr.ErrUnprocessable(
			"status",
			"Invalid status. Must be one of: available, vacation, sick_leave, unavailable.")
	}

	if servicesPresent {
		services, err := v.resolveServices(ctx, serviceIDs)
		if err != nil {
			return nil, err
		}
		patch.Services = services
		patch.servicesPresent = true
	}

	return patch, nil
}

func (v *Validator) validateEmailUnique(ctx context.Context, email string, excludeID uint) error {
	existing, err := v.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing == nil || (excludeID != 0 && existing.ID == excludeID) {
		return nil
	}
	return httperr.ErrConflict("email", "Email already registered.")
}

func (v *Validator) validatePhoneUnique(ctx context.Context, phoneNumber string, excludeID uint) error {
	existing, err := v.store.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return err
	}
	if existing == nil || (excludeID != 0 && existing.ID == excludeID) {
		return nil
	}
	return httperr.ErrConflict("phone_number", "Phone number already registered.")
}

func (v *Validator) resolveServices(ctx context.Context, serviceIDs []uint) ([]models.Service, error) {
	if len(serviceIDs) == 0 {
		return nil, httperr.ErrNotFound("service", "Service not found.")
	}

	services := make([]models.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		service, err := v.services.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if service == nil {
			return nil, httperr.ErrNotFound("service", "Service not found.")
		}
		services = append(services, *service)
	}

	return services, nil
}

func stringField(fields map[string]any, key string) (string, bool, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, httperr.ErrInvalidArgument(
			key, "Field '"+key+"' must be a string.")
	}
	return s, true, nil
}

func idListField(fields map[string]any, key string) ([]uint, bool, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return nil, false, nil
	}

	switch v := raw.(type) {
	case []uint:
		return v, true, nil
	case []any:
		ids := make([]uint, 0, len(v))
		for i, item := range v {
			var id uint
			switch n := item.(type) {
			case float64:
				if n <= 0 || n != float64(uint(n)) {
					return nil, false, httperr.ErrInvalidArgument(
						key, fmt.Sprintf("Field '%s' has an invalid id at position %d.", key, i))
				}
				id = uint(n)
			case int:
				if n <= 0 {
					return nil, false, httperr.ErrInvalidArgument(
						key, fmt.Sprintf("Field '%s' has an invalid id at position %d.", key, i))
				}
				id = uint(n)
			default:
				return nil, false, httperr.ErrInvalidArgument(
					key, fmt.Sprintf("Field '%s' has an invalid id at position %d.", key, i))
			}
			ids = append(ids, id)
		}
		return ids, true, nil
	default:
		return nil, false, httperr.ErrInvalidArgument(
			key, "Field '"+key+"' must be a list of positive integers.")
	}
}
