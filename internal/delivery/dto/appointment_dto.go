package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

type UpdateAppointmentRequest struct {
	PatientID *string `json:"patientId"`
	DoctorID  *string `json:"doctorId"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Status    *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patientId"`
	DoctorID  string    `json:"doctorId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
