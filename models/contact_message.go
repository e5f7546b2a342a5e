package models

import "time"

// Contact message status values.
const (
	MessageNew     = "new"
	MessageRead    = "read"
	MessageReplied = "replied"
)

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null;index:idx_contact_messages_email" json:"email"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(20);not null;default:'new';index:idx_contact_messages_status" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
