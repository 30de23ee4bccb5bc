package models

import "time"

// ===============================
// Employee Status
// ===============================

type EmployeeStatus string

const (
	EmployeeAvailable   EmployeeStatus = "available"
	EmployeeVacation    EmployeeStatus = "vacation"
	EmployeeSickLeave   EmployeeStatus = "sick_leave"
	EmployeeUnavailable EmployeeStatus = "unavailable"
)

func ValidEmployeeStatus(status string) bool {
	switch EmployeeStatus(status) {
	case EmployeeAvailable, EmployeeVacation, EmployeeSickLeave, EmployeeUnavailable:
		return true
	}
	return false
}

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PhoneNumber string `gorm:"size:50;not null;uniqueIndex" json:"phone_number"`

	Status string `gorm:"size:20;not null;default:'available'" json:"status"`

	Services     []Service     `gorm:"many2many:employee_services" json:"services,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:EmployeeID" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
