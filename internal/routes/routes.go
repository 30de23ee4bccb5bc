package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	bookingdomain "github.com/agendaplus/booking-api/internal/domain/booking"
	customerdomain "github.com/agendaplus/booking-api/internal/domain/customer"
	employeedomain "github.com/agendaplus/booking-api/internal/domain/employee"
	servicedomain "github.com/agendaplus/booking-api/internal/domain/service"

	"github.com/agendaplus/booking-api/internal/config"
	"github.com/agendaplus/booking-api/internal/handlers"
	infraRepo "github.com/agendaplus/booking-api/internal/infra/repository"
	"github.com/agendaplus/booking-api/internal/middleware"
	"github.com/agendaplus/booking-api/internal/phone"
	ucAppointment "github.com/agendaplus/booking-api/internal/usecase/appointment"
	ucCustomer "github.com/agendaplus/booking-api/internal/usecase/customer"
	ucDashboard "github.com/agendaplus/booking-api/internal/usecase/dashboard"
	ucEmployee "github.com/agendaplus/booking-api/internal/usecase/employee"
	ucService "github.com/agendaplus/booking-api/internal/usecase/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	customerRepo := infraRepo.NewCustomerGormRepository(db)
	employeeRepo := infraRepo.NewEmployeeGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)

	phoneVerifier := phone.NewCachedVerifier(phone.NewNumVerifyClient(cfg), rdb)

	// ======================================================
	// DOMAIN VALIDATORS
	// ======================================================
	bookingValidator := bookingdomain.NewValidator(appointmentRepo)
	customerValidator := customerdomain.NewValidator(customerRepo, phoneVerifier)
	employeeValidator := employeedomain.NewValidator(employeeRepo, serviceRepo, phoneVerifier)
	serviceValidator := servicedomain.NewValidator(serviceRepo)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, bookingValidator)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, bookingValidator)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// USE CASES — CUSTOMERS
	// ======================================================
	createCustomerUC := ucCustomer.NewCreateCustomer(customerRepo, customerValidator)
	updateCustomerUC := ucCustomer.NewUpdateCustomer(customerRepo, customerValidator)
	deleteCustomerUC := ucCustomer.NewDeleteCustomer(customerRepo)
	getCustomerUC := ucCustomer.NewGetCustomer(customerRepo)
	listCustomersUC := ucCustomer.NewListCustomers(customerRepo)

	// ======================================================
	// USE CASES — EMPLOYEES
	// ======================================================
	createEmployeeUC := ucEmployee.NewCreateEmployee(employeeRepo, employeeValidator)
	updateEmployeeUC := ucEmployee.NewUpdateEmployee(employeeRepo, employeeValidator)
	deleteEmployeeUC := ucEmployee.NewDeleteEmployee(employeeRepo)
	getEmployeeUC := ucEmployee.NewGetEmployee(employeeRepo)
	listEmployeesUC := ucEmployee.NewListEmployees(employeeRepo)

	// ======================================================
	// USE CASES — SERVICES
	// ======================================================
	createServiceUC := ucService.NewCreateService(serviceRepo, serviceValidator)
	updateServiceUC := ucService.NewUpdateService(serviceRepo, serviceValidator)
	deleteServiceUC := ucService.NewDeleteService(serviceRepo)
	getServiceUC := ucService.NewGetService(serviceRepo)
	listServicesUC := ucService.NewListServices(serviceRepo)

	// ======================================================
	// USE CASES — DASHBOARD
	// ======================================================
	summaryUC := ucDashboard.NewGetSummary(customerRepo, employeeRepo, serviceRepo, appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
	)

	customerHandler := handlers.NewCustomerHandler(
		createCustomerUC,
		updateCustomerUC,
		deleteCustomerUC,
		getCustomerUC,
		listCustomersUC,
	)

	employeeHandler := handlers.NewEmployeeHandler(
		createEmployeeUC,
		updateEmployeeUC,
		deleteEmployeeUC,
		getEmployeeUC,
		listEmployeesUC,
	)

	serviceHandler := handlers.NewServiceHandler(
		createServiceUC,
		updateServiceUC,
		deleteServiceUC,
		getServiceUC,
		listServicesUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(summaryUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("", appointmentHandler.List)
			appointments.GET("/:id", appointmentHandler.Get)
			appointments.PATCH("/:id", appointmentHandler.Update)
			appointments.DELETE("/:id", appointmentHandler.Delete)
		}

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		customers := api.Group("/customers")
		{
			customers.POST("", customerHandler.Create)
			customers.GET("", customerHandler.List)
			customers.GET("/:id", customerHandler.Get)
			customers.PATCH("/:id", customerHandler.Update)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		// ------------------------------
		// EMPLOYEES
		// ------------------------------
		employees := api.Group("/employees")
		{
			employees.POST("", employeeHandler.Create)
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)
			employees.PATCH("/:id", employeeHandler.Update)
			employees.DELETE("/:id", employeeHandler.Delete)
		}

		// ------------------------------
		// SERVICES
		// ------------------------------
		services := api.Group("/services")
		{
			services.POST("", serviceHandler.Create)
			services.GET("", serviceHandler.List)
			services.GET("/:id", serviceHandler.Get)
			services.PATCH("/:id", serviceHandler.Update)
			services.DELETE("/:id", serviceHandler.Delete)
		}

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Summary)
	}
}
