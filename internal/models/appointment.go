package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One slot per (customer, date) and per (employee, date). The unique
	// indexes below back the validator's availability pre-check so a
	// concurrent insert between check and commit still fails.
	Date time.Time `gorm:"not null;uniqueIndex:idx_appointments_customer_date,priority:2;uniqueIndex:idx_appointments_employee_date,priority:2" json:"date"`

	CustomerID uint     `gorm:"not null;uniqueIndex:idx_appointments_customer_date,priority:1" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	EmployeeID uint     `gorm:"not null;uniqueIndex:idx_appointments_employee_date,priority:1" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"employee"`

	Services []Service `gorm:"many2many:appointment_services" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
