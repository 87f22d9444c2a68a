package models

import "time"

type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Label       string `gorm:"size:100;uniqueIndex;not null" json:"label"`
	Description string `gorm:"size:255" json:"description"`
	Color       string `gorm:"size:30" json:"color"`
	Icon        string `gorm:"size:30" json:"icon"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
