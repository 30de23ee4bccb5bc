package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
	"github.com/agendaplus/booking-api/internal/phone"
)

// ===============================
// Fakes
// ===============================

type fakeStore struct {
	byEmail map[string]*models.Customer
	byPhone map[string]*models.Customer
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	return f.byEmail[email], nil
}

func (f *fakeStore) FindByPhone(_ context.Context, phoneNumber string) (*models.Customer, error) {
	return f.byPhone[phoneNumber], nil
}

type fakeVerifier struct {
	verdict *phone.Verification
	err     error
	calls   int
}

func (f *fakeVerifier) Verify(context.Context, string) (*phone.Verification, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.verdict, nil
}

func brMobileVerifier() *fakeVerifier {
	return &fakeVerifier{verdict: &phone.Verification{
		Valid:       true,
		CountryCode: phone.CountryBR,
		LineType:    phone.LineTypeMobile,
	}}
}

const goodPhone = "11987654321"

// ===============================
// Create path
// ===============================

func TestValidateNew_OK(t *testing.T) {
	store := &fakeStore{}
	verifier := brMobileVerifier()
	v := NewValidator(store, verifier)

	err := v.ValidateNew(context.Background(), "ana@example.com", goodPhone)
	require.NoError(t, err)
	assert.Equal(t, 1, verifier.calls)
}

func TestValidateNew_EmailTaken(t *testing.T) {
	store := &fakeStore{
		byEmail: map[string]*models.Customer{
			"ana@example.com": {ID: 3},
		},
	}
	verifier := brMobileVerifier()
	v := NewValidator(store, verifier)

	err := v.ValidateNew(context.Background(), "ana@example.com", goodPhone)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.EqualError(t, err, "Email already registered.")
	assert.Zero(t, verifier.calls)
}

func TestValidateNew_PhoneTaken(t *testing.T) {
	store := &fakeStore{
		byPhone: map[string]*models.Customer{
			goodPhone: {ID: 3},
		},
	}
	v := NewValidator(store, brMobileVerifier())

	err := v.ValidateNew(context.Background(), "ana@example.com", goodPhone)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.EqualError(t, err, "Phone number already registered.")
}

func TestValidateNew_PhoneShapeRejectedLocally(t *testing.T) {
	verifier := brMobileVerifier()
	v := NewValidator(&fakeStore{}, verifier)

	for _, number := range []string{"123", "0198765432", "11 98765-4321", "119876543210"} {
		err := v.ValidateNew(context.Background(), "ana@example.com", number)
		require.Error(t, err, number)
		assert.True(t, httperr.IsKind(err, httperr.KindUnprocessable))
	}
	assert.Zero(t, verifier.calls)
}

func TestValidateNew_NonMobileVerdict(t *testing.T) {
	verifier := &fakeVerifier{verdict: &phone.Verification{
		Valid:       true,
		CountryCode: phone.CountryBR,
		LineType:    "landline",
	}}
	v := NewValidator(&fakeStore{}, verifier)

	err := v.ValidateNew(context.Background(), "ana@example.com", goodPhone)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindUnprocessable))
	assert.EqualError(t, err,
		"Phone number failed verification: must be a valid Brazilian mobile line.")
}

func TestValidateNew_UpstreamFailurePassedThrough(t *testing.T) {
	verifier := &fakeVerifier{
		err: httperr.ErrUpstream("phone_number", "Phone verification service unreachable."),
	}
	v := NewValidator(&fakeStore{}, verifier)

	err := v.ValidateNew(context.Background(), "ana@example.com", goodPhone)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindUpstream))
}

// ===============================
// Update path
// ===============================

func TestValidateUpdate_NoValidFields(t *testing.T) {
	v := NewValidator(&fakeStore{}, brMobileVerifier())

	_, err := v.ValidateUpdate(context.Background(), map[string]any{"id": float64(9)}, 1)
	require.Error(t, err)
	assert.EqualError(t, err, "No valid fields to update.")
}

func TestValidateUpdate_NameOnly(t *testing.T) {
	verifier := brMobileVerifier()
	v := NewValidator(&fakeStore{}, verifier)

	patch, err := v.ValidateUpdate(context.Background(), map[string]any{"name": "Ana Clara"}, 1)
	require.NoError(t, err)
	require.NotNil(t, patch.Name)
	assert.Equal(t, "Ana Clara", *patch.Name)
	assert.Nil(t, patch.Email)
	assert.Zero(t, verifier.calls)
}

func TestValidateUpdate_EmailSelfExempt(t *testing.T) {
	store := &fakeStore{
		byEmail: map[string]*models.Customer{
			"ana@example.com": {ID: 1},
		},
	}
	v := NewValidator(store, brMobileVerifier())

	// Re-submitting the customer's own email is not a conflict.
	_, err := v.ValidateUpdate(context.Background(), map[string]any{"email": "ana@example.com"}, 1)
	assert.NoError(t, err)

	// The same email from another customer is.
	_, err = v.ValidateUpdate(context.Background(), map[string]any{"email": "ana@example.com"}, 2)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestValidateUpdate_PhoneChangeReverified(t *testing.T) {
	verifier := brMobileVerifier()
	v := NewValidator(&fakeStore{}, verifier)

	patch, err := v.ValidateUpdate(
		context.Background(), map[string]any{"phone_number": goodPhone}, 1)
	require.NoError(t, err)
	require.NotNil(t, patch.PhoneNumber)
	assert.Equal(t, 1, verifier.calls)
}

func TestValidateUpdate_WrongFieldType(t *testing.T) {
	v := NewValidator(&fakeStore{}, brMobileVerifier())

	_, err := v.ValidateUpdate(context.Background(), map[string]any{"name": float64(12)}, 1)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidArgument))
}
