package models

import "time"

type Relative struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint   `json:"patient_id"`
	Firstname string `gorm:"size:100;not null" json:"firstname"`
	Lastname  string `gorm:"size:100;not null" json:"lastname"`
	Notes     string `gorm:"size:1000" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
