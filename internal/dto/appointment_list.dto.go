package dto

import "time"

type AppointmentListDTO struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Location string    `json:"location"`
	Notes    string    `json:"notes,omitempty"`
	Patient  string    `json:"patient,omitempty"`
	Category string    `json:"category,omitempty"`
}

type WindowDTO struct {
	View         string               `json:"view"`
	From         *time.Time           `json:"from,omitempty"`
	To           *time.Time           `json:"to,omitempty"`
	Appointments []AppointmentListDTO `json:"appointments"`
}
