package filedb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

type appointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) repository.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	return snap.Appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range snap.Appointments {
		if snap.Appointments[i].ID == id {
			appointment := snap.Appointments[i]
			return &appointment, nil
		}
	}
	return nil, nil
}

func (r *appointmentRepository) FindByDate(ctx context.Context, date string) ([]entity.Appointment, error) {
	return r.filter(func(a *entity.Appointment) bool { return a.Date == date })
}

func (r *appointmentRepository) FindByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	return r.filter(func(a *entity.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *appointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	return r.filter(func(a *entity.Appointment) bool { return a.PatientID == patientID })
}

func (r *appointmentRepository) FindRecent(ctx context.Context, limit int) ([]entity.Appointment, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}

	recent := make([]entity.Appointment, len(snap.Appointments))
	copy(recent, snap.Appointments)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	return r.store.Update(func(snap *Snapshot) error {
		snap.Appointments = append(snap.Appointments, *appointment)
		return nil
	})
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	appointment.UpdatedAt = time.Now().UTC()

	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Appointments {
			if snap.Appointments[i].ID == appointment.ID {
				snap.Appointments[i] = *appointment
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(snap *Snapshot) error {
		for i := range snap.Appointments {
			if snap.Appointments[i].ID == id {
				snap.Appointments = append(snap.Appointments[:i], snap.Appointments[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *appointmentRepository) filter(keep func(*entity.Appointment) bool) ([]entity.Appointment, error) {
	snap, err := r.store.Read()
	if err != nil {
		return nil, err
	}

	matched := []entity.Appointment{}
	for i := range snap.Appointments {
		if keep(&snap.Appointments[i]) {
			matched = append(matched, snap.Appointments[i])
		}
	}
	return matched, nil
}
