package filedb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

type billRepository struct {
	store *Store
}

func NewBillRepository(store *Store) repository.BillRepository {
	return &billRepository{store: store}
}

func (r *billRepository) FindAll(ctx context.Context) ([]entity.Bill, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	return snap.Bills, nil
}

func (r *billRepository) FindByID(ctx context.Context, id string) (*entity.Bill, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range snap.Bills {
		if snap.Bills[i].ID == id {
			bill := snap.Bills[i]
			return &bill, nil
		}
	}
	return nil, nil
}

func (r *billRepository) FindByPatient(ctx context.Context, patientID string) ([]entity.Bill, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}

	matched := []entity.Bill{}
	for i := range snap.Bills {
		if snap.Bills[i].PatientID == patientID {
			matched = append(matched, snap.Bills[i])
		}
	}
	return matched, nil
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	bill.CreatedAt = now
	bill.UpdatedAt = now

	return r.store.Update(func(snap *Snapshot) error {
		snap.Bills = append(snap.Bills, *bill)
		return nil
	})
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	bill.UpdatedAt = time.Now().UTC()

	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Bills {
			if snap.Bills[i].ID == bill.ID {
				snap.Bills[i] = *bill
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *billRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Bills {
			if snap.Bills[i].ID == id {
				snap.Bills = append(snap.Bills[:i], snap.Bills[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}
