package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Firstname string `gorm:"size:100;not null" json:"firstname"`
	Lastname  string `gorm:"size:100;not null" json:"lastname"`
	Email     string `gorm:"size:100" json:"email"`
	BirthDate string `gorm:"size:10" json:"birth_date"`

	CareLevel   int    `gorm:"default:1" json:"care_level"`
	Pronoun     string `gorm:"size:30" json:"pronoun"`
	Active      bool   `gorm:"default:true" json:"active"`
	ActiveSince string `gorm:"size:10" json:"active_since"`

	Notes    string `gorm:"size:1000" json:"notes"`
	PhotoURL string `gorm:"size:500" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
