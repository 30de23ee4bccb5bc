package models

import "time"

// ===============================
// Service Status
// ===============================

type ServiceStatus string

const (
	ServiceAvailable   ServiceStatus = "available"
	ServiceUnavailable ServiceStatus = "unavailable"
)

func ValidServiceStatus(status string) bool {
	switch ServiceStatus(status) {
	case ServiceAvailable, ServiceUnavailable:
		return true
	}
	return false
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`

	// Price in integer cents.
	Price int `gorm:"not null" json:"price"`

	Status string `gorm:"size:20;not null;default:'available'" json:"status"`

	Employees    []Employee    `gorm:"many2many:employee_services" json:"employees,omitempty"`
	Appointments []Appointment `gorm:"many2many:appointment_services" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
