package service

import (
	"context"
	"fmt"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

// Price bounds in integer cents.
const (
	MinPrice = 2500
	MaxPrice = 10000
)

// Store covers the lookups the validator needs. Lookups return (nil, nil)
// when absent.
type Store interface {
	FindByName(ctx context.Context, name string) (*models.Service, error)
}

// Repository adds persistence for the service use cases.
type Repository interface {
	Store

	GetByID(ctx context.Context, id uint) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service, patch *Patch) (*models.Service, error)
	Delete(ctx context.Context, service *models.Service) error
	CountEmployeesUsing(ctx context.Context, serviceID uint) (int64, error)
	HasFutureAppointments(ctx context.Context, serviceID uint) (bool, error)
}

// Patch is the typed update whitelist.
type Patch struct {
	Name   *string
	Price  *int
	Status *string
}

type Validator struct {
	store Store
}

func NewValidator(store Store) *Validator {
	return &Validator{store: store}
}

// ValidateNew enforces name uniqueness, the price range and the status
// enum before a service is created.
func (v *Validator) ValidateNew(ctx context.Context, name string, price int, status string) error {
	if err := v.validateNameUnique(ctx, name, 0); err != nil {
		return err
	}
	if err := validatePriceRange(price); err != nil {
		return err
	}
	if status != "" {
		if err := validateStatus(status); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUpdate filters the payload down to the update whitelist and
// re-checks each present field, exempting the service's own record from
// the name uniqueness check.
func (v *Validator) ValidateUpdate(ctx context.Context, fields map[string]any, currentID uint) (*Patch, error) {
	patch := &Patch{}
	found := false

	if raw, ok := fields["name"]; ok && raw != nil {
		name, ok := raw.(string)
		if !ok {
			return nil, httperr.ErrInvalidArgument("name", "Field 'name' must be a string.")
		}
		patch.Name = &name
		found = true
	}

	if raw, ok := fields["price"]; ok && raw != nil {
		price, ok := asInt(raw)
		if !ok {
			return nil, httperr.ErrInvalidArgument("price", "Field 'price' must be an integer.")
		}
		patch.Price = &price
		found = true
	}

	if raw, ok := fields["status"]; ok && raw != nil {
		status, ok := raw.(string)
		if !ok {
			return nil, httperr.ErrInvalidArgument("status", "Field 'status' must be a string.")
		}
		patch.Status = &status
		found = true
	}

	if !found {
		return nil, httperr.ErrInvalidArgument("", "No valid fields to update.")
	}

	if patch.Name != nil {
		if err := v.validateNameUnique(ctx, *patch.Name, currentID); err != nil {
			return nil, err
		}
	}
	if patch.Price != nil {
		if err := validatePriceRange(*patch.Price); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return nil, err
		}
	}

	return patch, nil
}

func (v *Validator) validateNameUnique(ctx context.Context, name string, excludeID uint) error {
	existing, err := v.store.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing == nil || (excludeID != 0 && existing.ID == excludeID) {
		return nil
	}
	return httperr.ErrConflict("name", "Service already registered.")
}

func validatePriceRange(price int) error {
	if price < MinPrice || price > MaxPrice {
		return httperr.ErrUnprocessable(
			"price",
			fmt.Sprintf("Price must be between %d and %d cents.", MinPrice, MaxPrice))
	}
	return nil
}

func validateStatus(status string) error {
	if !models.ValidServiceStatus(status) {
		return httperr.ErrUnprocessable(
			"status", "Invalid status. Must be one of: available, unavailable.")
	}
	return nil
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
