package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PhoneNumber string `gorm:"size:50;not null;uniqueIndex" json:"phone_number"`

	Appointments []Appointment `gorm:"foreignKey:CustomerID" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
