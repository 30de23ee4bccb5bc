package booking

import (
	"fmt"
	"time"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

// ===============================
// Update payload
// ===============================

// Patch carries the typed whitelist of appointment fields an update may
// touch. The customer is immutable after creation, so it never appears
// here. ServiceIDs keeps nil (absent) distinct from an empty list.
type Patch struct {
	Date       *time.Time
	EmployeeID *uint
	ServiceIDs []uint

	servicesPresent bool
}

func (p *Patch) HasServices() bool {
	return p.servicesPresent
}

// ValidatedPatch is what the caller applies: resolved objects, not ids,
// and only the fields that were actually validated.
type ValidatedPatch struct {
	Date     *time.Time
	Employee *models.Employee
	Services []models.Service

	servicesPresent bool
}

func (p *ValidatedPatch) HasServices() bool {
	return p.servicesPresent
}

// ParsePatch filters the raw payload down to the update whitelist.
// Unknown fields are silently ignored; a present field with the wrong
// type is rejected; an empty result is an error.
func ParsePatch(fields map[string]any) (*Patch, error) {
	patch := &Patch{}
	found := false

	if raw, ok := fields["date"]; ok && raw != nil {
		date, err := parseDateField(raw)
		if err != nil {
			return nil, err
		}
		patch.Date = &date
		found = true
	}

	if raw, ok := fields["employee_id"]; ok && raw != nil {
		id, ok := asPositiveInt(raw)
		if !ok {
			return nil, httperr.ErrInvalidArgument(
				"employee_id", "Field 'employee_id' must be a positive integer.")
		}
		patch.EmployeeID = &id
		found = true
	}

	if raw, ok := fields["service_ids"]; ok && raw != nil {
		ids, err := asIDList(raw)
		if err != nil {
			return nil, err
		}
		patch.ServiceIDs = ids
		patch.servicesPresent = true
		found = true
	}

	if !found {
		return nil, httperr.ErrInvalidArgument("", "No valid fields to update.")
	}

	return patch, nil
}

func parseDateField(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case string:
		return ParseDateTime(v)
	case time.Time:
		return v, nil
	default:
		return time.Time{}, httperr.ErrInvalidArgument(
			"date", "Field 'date' must be a datetime string.")
	}
}

// asPositiveInt accepts the numeric shapes JSON decoding produces.
func asPositiveInt(raw any) (uint, bool) {
	switch v := raw.(type) {
	case float64:
		if v <= 0 || v != float64(uint(v)) {
			return 0, false
		}
		return uint(v), true
	case int:
		if v <= 0 {
			return 0, false
		}
		return uint(v), true
	case uint:
		if v == 0 {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

func asIDList(raw any) ([]uint, error) {
	wrongType := httperr.ErrInvalidArgument(
		"service_ids", "Field 'service_ids' must be a list of positive integers.")

	switch v := raw.(type) {
	case []uint:
		return v, nil
	case []any:
		ids := make([]uint, 0, len(v))
		for i, item := range v {
			id, ok := asPositiveInt(item)
			if !ok {
				return nil, httperr.ErrInvalidArgument(
					"service_ids",
					fmt.Sprintf("Field 'service_ids' has an invalid id at position %d.", i))
			}
			ids = append(ids, id)
		}
		return ids, nil
	default:
		return nil, wrongType
	}
}
