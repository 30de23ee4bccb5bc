package customer

import (
	"context"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
	"github.com/agendaplus/booking-api/internal/phone"
)

// Store covers the lookups the validator needs. Lookups return (nil, nil)
// when absent.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*models.Customer, error)
}

// Repository adds persistence for the customer use cases.
type Repository interface {
	Store

	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer, patch *Patch) (*models.Customer, error)
	Delete(ctx context.Context, customer *models.Customer) error
	HasFutureAppointments(ctx context.Context, customerID uint) (bool, error)
}

// Patch is the typed update whitelist. The zero value means "not touched".
type Patch struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}

type Validator struct {
	store  Store
	phones phone.Verifier
}

func NewValidator(store Store, phones phone.Verifier) *Validator {
	return &Validator{store: store, phones: phones}
}

// ValidateNew enforces email and phone uniqueness plus the external phone
// verification before a customer is created.
func (v *Validator) ValidateNew(ctx context.Context, email, phoneNumber string) error {
	if err := v.validateEmailUnique(ctx, email, 0); err != nil {
		return err
	}
	if err := v.validatePhoneUnique(ctx, phoneNumber, 0); err != nil {
		return err
	}
	return phone.VerifyBRCellphone(ctx, v.phones, phoneNumber)
}

// ValidateUpdate filters the payload down to the update whitelist and
// re-checks uniqueness for whichever identifying fields are present,
// exempting the customer's own record.
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
