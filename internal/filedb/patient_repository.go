package filedb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

type patientRepository struct {
	store *Store
}

func NewPatientRepository(store *Store) repository.PatientRepository {
	return &patientRepository{store: store}
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	return snap.Patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range snap.Patients {
		if snap.Patients[i].ID == id {
			patient := snap.Patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	return r.store.Update(func(snap *Snapshot) error {
		snap.Patients = append(snap.Patients, *patient)
		return nil
	})
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	patient.UpdatedAt = time.Now().UTC()

	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Patients {
			if snap.Patients[i].ID == patient.ID {
				snap.Patients[i] = *patient
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *patientRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Patients {
			if snap.Patients[i].ID == id {
				snap.Patients = append(snap.Patients[:i], snap.Patients[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}
