package repository

import (
	"context"

	"gorm.io/gorm"

	employeedomain "github.com/agendaplus/booking-api/internal/domain/employee"
	domain "github.com/agendaplus/booking-api/internal/domain/service"
	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/models"
	"github.com/agendaplus/booking-api/internal/timezone"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *ServiceGormRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	return firstOrNil(r.db.WithContext(ctx).Where("id = ?", id), &service)
}

func (r *ServiceGormRepository) FindByName(ctx context.Context, name string) (*models.Service, error) {
	var service models.Service
	return firstOrNil(r.db.WithContext(ctx).Where("name = ?", name), &service)
}

func (r *ServiceGormRepository) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *ServiceGormRepository) Create(ctx context.Context, service *models.Service) error {
	err := r.db.WithContext(ctx).Create(service).Error
	return translateServiceConflict(err)
}

func (r *ServiceGormRepository) Update(
	ctx context.Context,
	service *models.Service,
	patch *domain.Patch,
) (*models.Service, error) {

	if patch.Name != nil {
		service.Name = *patch.Name
	}
	if patch.Price != nil {
		service.Price = *patch.Price
	}
	if patch.Status != nil {
		service.Status = *patch.Status
	}

	if err := r.db.WithContext(ctx).
		Omit("Employees", "Appointments").
		Save(service).Error; err != nil {
		return nil, translateServiceConflict(err)
	}
	return service, nil
}

func (r *ServiceGormRepository) Delete(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Delete(service).Error
}

// --------------------------------------------------
// Deletion guards
// --------------------------------------------------

func (r *ServiceGormRepository) CountEmployeesUsing(ctx context.Context, serviceID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employee_services").
		Where("service_id = ?", serviceID).
		Count(&count).Error
	return count, err
}

func (r *ServiceGormRepository) HasFutureAppointments(ctx context.Context, serviceID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Joins("JOIN appointment_services ON appointment_services.appointment_id = appointments.id").
		Where("appointment_services.service_id = ? AND appointments.date > ?", serviceID, timezone.Now()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateServiceConflict(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := isUniqueViolation(err); ok {
		return httperr.ErrConflict("name", "Service already registered.")
	}
	return err
}

// Compile-time checks
var (
	_ domain.Repository             = (*ServiceGormRepository)(nil)
	_ employeedomain.ServiceCatalog = (*ServiceGormRepository)(nil)
)
