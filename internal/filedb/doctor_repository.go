package filedb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

type doctorRepository struct {
	store *Store
}

func NewDoctorRepository(store *Store) repository.DoctorRepository {
	return &doctorRepository{store: store}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	return snap.Doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range snap.Doctors {
		if snap.Doctors[i].ID == id {
			doctor := snap.Doctors[i]
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	return r.store.Update(func(snap *Snapshot) error {
		snap.Doctors = append(snap.Doctors, *doctor)
		return nil
	})
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	doctor.UpdatedAt = time.Now().UTC()

	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Doctors {
			if snap.Doctors[i].ID == doctor.ID {
				snap.Doctors[i] = *doctor
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *doctorRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Doctors {
			if snap.Doctors[i].ID == id {
				snap.Doctors = append(snap.Doctors[:i], snap.Doctors[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}
