package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]entity.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]entity.Appointment, error)
	// FindRecent returns up to limit appointments ordered by creation time,
	// newest first.
	FindRecent(ctx context.Context, limit int) ([]entity.Appointment, error)
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id string) error
}
