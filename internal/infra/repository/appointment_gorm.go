package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendaplus/booking-api/internal/domain/booking"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Entity lookups (booking.Store)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	return firstOrNil(r.db.WithContext(ctx).Where("id = ?", id), &customer)
}

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var employee models.Employee
	return firstOrNil(r.db.WithContext(ctx).Where("id = ?", id), &employee)
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	return firstOrNil(r.db.WithContext(ctx).Where("id = ?", id), &service)
}

// --------------------------------------------------
// Slot queries
// --------------------------------------------------

func (r *AppointmentGormRepository) CustomerHasAppointmentAt(
	ctx context.Context,
	customerID uint,
	date time.Time,
	excludeID uint,
) (bool, error) {
	return r.hasAppointmentAt(ctx, "customer_id", customerID, date, excludeID)
}

func (r *AppointmentGormRepository) EmployeeHasAppointmentAt(
	ctx context.Context,
	employeeID uint,
	date time.Time,
	excludeID uint,
) (bool, error) {
	return r.hasAppointmentAt(ctx, "employee_id", employeeID, date, excludeID)
}

func (r *AppointmentGormRepository) hasAppointmentAt(
	ctx context.Context,
	column string,
	actorID uint,
	date time.Time,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(column+" = ? AND date = ?", actorID, date)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Appointment CRUD
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	return firstOrNil(
		r.db.WithContext(ctx).
			Preload("Customer").
			Preload("Employee").
			Preload("Services").
			Where("id = ?", id),
		&ap,
	)
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Employee").
		Preload("Services").
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) CountAppointments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).Count(&count).Error
	return count, err
}

// CreateAppointment persists inside one transaction, re-checking the slot
// under a row lock. A unique violation from a concurrent insert surfaces
// as the same Conflict the pre-check would have produced.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		taken, err := slotTaken(tx, ap)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrConflict("date", "Time slot is no longer available.")
		}

		return tx.Create(ap).Error
	})

	return r.translateConflict(err)
}

// slotTaken reports whether either actor already holds the slot, locking
// the matching rows until the transaction finishes.
func slotTaken(tx *gorm.DB, ap *models.Appointment) (bool, error) {
	var ids []uint
	if err := lockSlotQuery(tx, ap).Find(&ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// lockSlotQuery selects matching row ids under FOR UPDATE. Postgres
// rejects locking clauses on aggregates, so this must stay a plain row
// query, never a count.
func lockSlotQuery(tx *gorm.DB, ap *models.Appointment) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"(customer_id = ? OR employee_id = ?) AND date = ?",
			ap.CustomerID, ap.EmployeeID, ap.Date,
		).
		Limit(1)
}

// UpdateAppointment applies only the validated fields, replacing the
// service set when the patch carries one.
func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	patch *domain.ValidatedPatch,
) (*models.Appointment, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if patch.Date != nil {
			ap.Date = *patch.Date
		}
		if patch.Employee != nil {
			ap.EmployeeID = patch.Employee.ID
			ap.Employee = *patch.Employee
		}

		if err := tx.Omit("Customer", "Employee", "Services").Save(ap).Error; err != nil {
			return err
		}

		if patch.HasServices() {
			if err := tx.Model(ap).Association("Services").Replace(patch.Services); err != nil {
				return err
			}
			ap.Services = patch.Services
		}

		return nil
	})

	if err != nil {
		return nil, r.translateConflict(err)
	}
	return ap, nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(ap).Association("Services").Clear(); err != nil {
			return err
		}
		return tx.Delete(ap).Error
	})
}

// translateConflict maps storage-level unique violations on the
// per-actor slot indexes to user-visible conflicts.
func (r *AppointmentGormRepository) translateConflict(err error) error {
	if err == nil {
		return nil
	}

	constraint, ok := isUniqueViolation(err)
	if !ok {
		return err
	}

	switch {
	case strings.Contains(constraint, "customer"):
		return httperr.ErrConflict("date", "Customer already has an appointment at this time.")
	case strings.Contains(constraint, "employee"):
		return httperr.ErrConflict("date", "Employee already has an appointment at this time.")
	default:
		return httperr.ErrConflict("date", "Time slot is no longer available.")
	}
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
