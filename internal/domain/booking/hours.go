package booking

import (
	"fmt"
	"time"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/timezone"
)

// ===============================
// Scheduling window rules
// ===============================

const (
	// Appointments may be booked at most this many days ahead.
	MaxAdvanceDays = 7

	// Business hours: lower bound inclusive, upper bound exclusive.
	OpeningHour = 9
	ClosingHour = 18

	MaxServicesPerAppointment = 10
)

// DateTimeLayout is the wire format the original API accepted; RFC 3339 is
// accepted as well.
const DateTimeLayout = "2006-01-02 15:04:05"

func ParseDateTime(value string) (time.Time, error) {
	loc := timezone.Location()

	if t, err := time.ParseInLocation(DateTimeLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}

	return time.Time{}, httperr.ErrInvalidArgument(
		"date",
		fmt.Sprintf("Date must be a valid datetime string (%q).", DateTimeLayout),
	)
}

func validateDateRange(date, now time.Time) error {
	maxDate := now.AddDate(0, 0, MaxAdvanceDays)

	if date.Before(now) || date.After(maxDate) {
		return httperr.ErrInvalidArgument(
			"date",
			fmt.Sprintf("Date must be between now and %d days in advance.", MaxAdvanceDays),
		)
	}
	return nil
}

func validateBusinessHours(date time.Time) error {
	hour := date.Hour()
	if hour < OpeningHour || hour >= ClosingHour {
		return httperr.ErrInvalidArgument(
			"date",
			fmt.Sprintf("Appointments must be between %02d:00 and %02d:00.", OpeningHour, ClosingHour),
		)
	}
	return nil
}
