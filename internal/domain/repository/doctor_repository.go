package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	Create(ctx context.Context, doctor *entity.Doctor) error
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id string) error
}
