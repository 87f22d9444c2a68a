package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Sex       string `gorm:"size:20" json:"sex"`
	Firstname string `gorm:"size:100;not null" json:"firstname"`
	Lastname  string `gorm:"size:100;not null" json:"lastname"`
	Birthdate string `gorm:"size:10" json:"birthdate"`
	Address   string `gorm:"size:255" json:"address"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
