package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name          string `json:"name" validate:"required"`
	Specialty     string `json:"specialty" validate:"required"`
	Contact       string `json:"contact" validate:"required"`
	AvailableDays string `json:"availableDays" validate:"required"`
}

type UpdateDoctorRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Specialty     *string `json:"specialty"`
	Contact       *string `json:"contact"`
	AvailableDays *string `json:"availableDays"`
}

// Response DTOs

type DoctorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Specialty     string    `json:"specialty"`
	Contact       string    `json:"contact"`
	AvailableDays string    `json:"availableDays"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
