package models

import "time"

type ContactMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Subject string `gorm:"size:200" json:"subject"`
	Message string `gorm:"size:2000;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
