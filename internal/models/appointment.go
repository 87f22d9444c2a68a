package models

import "time"

type Appointment struct {
	// UUID generated at creation time; a sequence derived from collection
	// size produces duplicates after reloads.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title    string `gorm:"size:100;not null" json:"title"`
	Location string `gorm:"size:255;not null" json:"location"`
	Notes    string `gorm:"size:255" json:"notes"`

	StartTime time.Time `gorm:"index" json:"start"`
	EndTime   time.Time `json:"end"`

	Patient  string `gorm:"size:100" json:"patient"`
	Category string `gorm:"size:50" json:"category"`

	CreatedBy uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
