package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/agendaplus/booking-api/internal/domain/employee"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
	"github.com/agendaplus/booking-api/internal/timezone"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *EmployeeGormRepository) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	return firstOrNil(
		r.db.WithContext(ctx).Preload("Services").Where("id = ?", id),
		&employee,
	)
}

func (r *EmployeeGormRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	return firstOrNil(r.db.WithContext(ctx).Where("email = ?", email), &employee)
}

func (r *EmployeeGormRepository) FindByPhone(ctx context.Context, phoneNumber string) (*models.Employee, error) {
	var employee models.Employee
	return firstOrNil(r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber), &employee)
}

func (r *EmployeeGormRepository) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Order("created_at DESC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *EmployeeGormRepository) Create(ctx context.Context, employee *models.Employee) error {
	err := r.db.WithContext(ctx).Create(employee).Error
	return translateEmployeeConflict(err)
}

func (r *EmployeeGormRepository) Update(
	ctx context.Context,
	employee *models.Employee,
	patch *domain.Patch,
) (*models.Employee, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if patch.Name != nil {
			employee.Name = *patch.Name
		}
		if patch.Email != nil {
			employee.Email = *patch.Email
		}
		if patch.PhoneNumber != nil {
			employee.PhoneNumber = *patch.PhoneNumber
		}
		if patch.Status != nil {
			employee.Status = *patch.Status
		}

		if err := tx.Omit("Services", "Appointments").Save(employee).Error; err != nil {
			return err
		}

		if patch.HasServices() {
			if err := tx.Model(employee).Association("Services").Replace(patch.Services); err != nil {
				return err
			}
			employee.Services = patch.Services
		}

		return nil
	})

	if err != nil {
		return nil, translateEmployeeConflict(err)
	}
	return employee, nil
}

func (r *EmployeeGormRepository) Delete(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(employee).Association("Services").Clear(); err != nil {
			return err
		}
		return tx.Delete(employee).Error
	})
}

// --------------------------------------------------
// Deletion guard
// --------------------------------------------------

func (r *EmployeeGormRepository) HasFutureAppointments(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("employee_id = ? AND date > ?", employeeID, timezone.Now()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateEmployeeConflict(err error) error {
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
var _ domain.Repository = (*EmployeeGormRepository)(nil)
