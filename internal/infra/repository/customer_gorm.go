package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/agendaplus/booking-api/internal/domain/customer"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
	"github.com/agendaplus/booking-api/internal/timezone"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *CustomerGormRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	return firstOrNil(r.db.WithContext(ctx).Where("id = ?", id), &customer)
}

func (r *CustomerGormRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	return firstOrNil(r.db.WithContext(ctx).Where("email = ?", email), &customer)
}

func (r *CustomerGormRepository) FindByPhone(ctx context.Context, phoneNumber string) (*models.Customer, error) {
	var customer models.Customer
	return firstOrNil(r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber), &customer)
}

func (r *CustomerGormRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *CustomerGormRepository) Create(ctx context.Context, customer *models.Customer) error {
	err := r.db.WithContext(ctx).Create(customer).Error
	return translateCustomerConflict(err)
}

func (r *CustomerGormRepository) Update(
	ctx context.Context,
	customer *models.Customer,
	patch *domain.Patch,
) (*models.Customer, error) {

	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Email != nil {
		customer.Email = *patch.Email
	}
	if patch.PhoneNumber != nil {
		customer.PhoneNumber = *patch.PhoneNumber
	}

	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, translateCustomerConflict(err)
	}
	return customer, nil
}

func (r *CustomerGormRepository) Delete(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Delete(customer).Error
}

// --------------------------------------------------
// Deletion guard
// --------------------------------------------------

func (r *CustomerGormRepository) HasFutureAppointments(ctx context.Context, customerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("customer_id = ? AND date > ?", customerID, timezone.Now()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateCustomerConflict(err error) error {
	if err == nil {
		return nil
	}
	if constraint, ok := isUniqueViolation(err); ok {
		if containsField(constraint, "phone") {
			return httperr.ErrConflict("phone_number", "Phone number already registered.")
		}
		return httperr.ErrConflict("email", "Email already registered.")
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*CustomerGormRepository)(nil)
