package models

import "time"

// Reservation status values.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Code            string    `gorm:"type:varchar(36);uniqueIndex" json:"code"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Email           string    `gorm:"type:varchar(255);not null;index:idx_reservations_email" json:"email"`
	Phone           string    `gorm:"type:varchar(50);not null" json:"phone"`
	Date            string    `gorm:"type:varchar(10);not null;index:idx_reservations_date" json:"date"` // YYYY-MM-DD
	Time            string    `gorm:"type:varchar(5);not null" json:"time"`                              // HH:MM
	Guests          int       `gorm:"not null" json:"guests"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_reservations_status" json:"status"`
	SpecialRequests *string   `gorm:"type:text" json:"special_requests,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
