package models

import "time"

type NewsItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"size:200;not null" json:"title"`
	Content  string `gorm:"size:2000" json:"content"`
	ImageURL string `gorm:"size:500" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
