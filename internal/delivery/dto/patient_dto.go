package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	Name         string `json:"name" validate:"required"`
	Age          int    `json:"age" validate:"required,gte=0"`
	Gender       string `json:"gender" validate:"required,oneof=male female other"`
	Contact      string `json:"contact" validate:"required"`
	Diagnosis    string `json:"diagnosis" validate:"required"`
	AdmittedDate string `json:"admittedDate" validate:"required"`
}

type UpdatePatientRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Age          *int    `json:"age" validate:"omitempty,gte=0"`
	Gender       *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Contact      *string `json:"contact"`
	Diagnosis    *string `json:"diagnosis"`
	AdmittedDate *string `json:"admittedDate"`
}

// Response DTOs

type PatientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	Contact      string    `json:"contact"`
	Diagnosis    string    `json:"diagnosis"`
	AdmittedDate string    `json:"admittedDate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
