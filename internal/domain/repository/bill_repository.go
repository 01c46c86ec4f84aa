package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

type BillRepository interface {
	FindAll(ctx context.Context) ([]entity.Bill, error)
	FindByID(ctx context.Context, id string) (*entity.Bill, error)
	FindByPatient(ctx context.Context, patientID string) ([]entity.Bill, error)
	Create(ctx context.Context, bill *entity.Bill) error
	Update(ctx context.Context, bill *entity.Bill) error
	Delete(ctx context.Context, id string) error
}
