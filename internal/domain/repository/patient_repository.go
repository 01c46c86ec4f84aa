package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

type PatientRepository interface {
	FindAll(ctx context.Context) ([]entity.Patient, error)
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	Create(ctx context.Context, patient *entity.Patient) error
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id string) error
}
