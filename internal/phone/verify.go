package phone

import (
	"context"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/validators"
)

// VerifyBRCellphone runs the cheap local shape check before spending an
// external verification call, then requires a valid BR mobile verdict.
func VerifyBRCellphone(ctx context.Context, v Verifier, number string) error {
	normalized, ok := validators.NormalizeBRCellphone(number)
	if !ok {
		return httperr.ErrUnprocessable(
			"phone_number", "Phone number must be a Brazilian cellphone with 11 digits.")
	}

	verdict, err := v.Verify(ctx, normalized)
	if err != nil {
		return err
	}
	if !verdict.IsBRMobile() {
		return httperr.ErrUnprocessable(
			"phone_number", "Phone number failed verification: must be a valid Brazilian mobile line.")
	}

	return nil
}
