package employee

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
	byEmail map[string]*models.Employee
	byPhone map[string]*models.Employee
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*models.Employee, error) {
	return f.byEmail[email], nil
}

func (f *fakeStore) FindByPhone(_ context.Context, phoneNumber string) (*models.Employee, error) {
	return f.byPhone[phoneNumber], nil
}

type fakeCatalog struct {
	services map[uint]*models.Service
}

func (f *fakeCatalog) Count(context.Context) (int64, error) {
	return int64(len(f.services)), nil
}

func (f *fakeCatalog) GetByID(_ context.Context, id uint) (*models.Service, error) {
	return f.services[id], nil
}

type fakeVerifier struct {
	verdict *phone.Verification
	calls   int
}

func (f *fakeVerifier) Verify(context.Context, string) (*phone.Verification, error) {
	f.calls++
	return f.verdict, nil
}

func brMobileVerifier() *fakeVerifier {
	return &fakeVerifier{verdict: &phone.Verification{
		Valid:       true,
		CountryCode: phone.CountryBR,
		LineType:    phone.LineTypeMobile,
	}}
}

func catalogWith(ids ...uint) *fakeCatalog {
	c := &fakeCatalog{services: map[uint]*models.Service{}}
	for _, id := range ids {
		c.services[id] = &models.Service{ID: id}
	}
	return c
}

const goodPhone = "21998765432"

// ===============================
// Create path
// ===============================

func TestValidateNew_OK(t *testing.T) {
	v := NewValidator(&fakeStore{}, catalogWith(1, 2), brMobileVerifier())

	services, err := v.ValidateNew(context.Background(), "bruna@example.com", goodPhone, []uint{1, 2})
	require.NoError(t, err)
	assert.Len(t, services, 2)
}

func TestValidateNew_EmptyCatalog(t *testing.T) {
	verifier := brMobileVerifier()
	v := NewValidator(&fakeStore{}, catalogWith(), verifier)

	_, err := v.ValidateNew(context.Background(), "bruna@example.com", goodPhone, []uint{1})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindUnprocessable))
	assert.EqualError(t, err, "A service must be registered before registering an employee.")
	assert.Zero(t, verifier.calls)
}

func TestValidateNew_EmailTaken(t *testing.T) {
	store := &fakeStore{
		byEmail: map[string]*models.Employee{
			"bruna@example.com": {ID: 4},
		},
	}
	v := NewValidator(store, catalogWith(1), brMobileVerifier())

	_, err := v.ValidateNew(context.Background(), "bruna@example.com", goodPhone, []uint{1})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.EqualError(t, err, "Email already registered.")
}

func TestValidateNew_UnknownService(t *testing.T) {
	v := NewValidator(&fakeStore{}, catalogWith(1), brMobileVerifier())

	_, err := v.ValidateNew(context.Background(), "bruna@example.com", goodPhone, []uint{1, 9})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.EqualError(t, err, "Service not found.")
}

func TestValidateNew_NoServiceIDs(t *testing.T) {
	v := NewValidator(&fakeStore{}, catalogWith(1), brMobileVerifier())

	_, err := v.ValidateNew(context.Background(), "bruna@example.com", goodPhone, nil)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

// ===============================
// Update path
// ===============================

func TestValidateUpdate_StatusEnum(t *testing.T) {
	v := NewValidator(&fakeStore{}, catalogWith(1), brMobileVerifier())
	ctx := context.Background()

	for _, status := range []string{"available", "vacation", "sick_leave", "unavailable"} {
		patch, err := v.ValidateUpdate(ctx, map[string]any{"status": status}, 1)
		require.NoError(t, err, status)
		assert.Equal(t, status, *patch.Status)
	}

	_, err := v.ValidateUpdate(ctx, map[string]any{"status": "retired"}, 1)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindUnprocessable))
	assert.EqualError(t, err,
		"Invalid status. Must be one of: available, vacation, sick_leave, unavailable.")
}

func TestValidateUpdate_ServiceReplacement(t *testing.T) {
	v := NewValidator(&fakeStore{}, catalogWith(1, 2), brMobileVerifier())

	patch, err := v.ValidateUpdate(
		context.Background(),
		map[string]any{"service_ids": []any{float64(2)}},
		1,
	)
	require.NoError(t, err)
	assert.True(t, patch.HasServices())
	require.Len(t, patch.Services, 1)
	assert.Equal(t, uint(2), patch.Services[0].ID)
}

func TestValidateUpdate_UnknownServiceInReplacement(t *testing.T) {
	v := NewValidator(&fakeStore{}, catalogWith(1), brMobileVerifier())

	_, err := v.ValidateUpdate(
		context.Background(),
		map[string]any{"service_ids": []any{float64(5)}},
		1,
	)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.EqualError(t, err, "Service not found.")
}

func TestValidateUpdate_PhoneSelfExempt(t *testing.T) {
	store := &fakeStore{
		byPhone: map[string]*models.Employee{
			goodPhone: {ID: 1},
		},
	}
	v := NewValidator(store, catalogWith(1), brMobileVerifier())

	_, err := v.ValidateUpdate(context.Background(), map[string]any{"phone_number": goodPhone}, 1)
	assert.NoError(t, err)

	_, err = v.ValidateUpdate(context.Background(), map[string]any{"phone_number": goodPhone}, 2)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.EqualError(t, err, "Phone number already registered.")
}

func TestValidateUpdate_NoValidFields(t *testing.T) {
	v := NewValidator(&fakeStore{}, catalogWith(1), brMobileVerifier())

	_, err := v.ValidateUpdate(context.Background(), map[string]any{"salary": float64(1)}, 1)
	require.Error(t, err)
	assert.EqualError(t, err, "No valid fields to update.")
}
