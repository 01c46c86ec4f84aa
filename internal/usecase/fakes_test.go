package usecase

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

// In-memory repository fakes for usecase tests. They mirror the storage
// contract: finders return nil for missing records, Update and Delete return
// repository.ErrNotFound.

var errRepoFailure = errors.New("repository failure")

type fakePatientRepo struct {
	patients []entity.Patient
	failAll  bool
}

func (f *fakePatientRepo) FindAll(ctx context.Context) ([]entity.Patient, error) {
	if f.failAll {
		return nil, errRepoFailure
	}
	return f.patients, nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == id {
			patient := f.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	if patient.ID == "" {
		patient.ID = "generated-id"
	}
	f.patients = append(f.patients, *patient)
	return nil
}

func (f *fakePatientRepo) Update(ctx context.Context, patient *entity.Patient) error {
	for i := range f.patients {
		if f.patients[i].ID == patient.ID {
			f.patients[i] = *patient
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakePatientRepo) Delete(ctx context.Context, id string) error {
	for i := range f.patients {
		if f.patients[i].ID == id {
			f.patients = append(f.patients[:i], f.patients[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUserRepo struct {
	users []entity.User
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]entity.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for i := range f.users {
		if f.users[i].Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = "generated-id"
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeDoctorRepo struct {
	doctors []entity.Doctor
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].ID == id {
			doctor := f.doctors[i]
			return &doctor, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	f.doctors = append(f.doctors, *doctor)
	return nil
}

func (f *fakeDoctorRepo) Update(ctx context.Context, doctor *entity.Doctor) error {
	for i := range f.doctors {
		if f.doctors[i].ID == doctor.ID {
			f.doctors[i] = *doctor
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeDoctorRepo) Delete(ctx context.Context, id string) error {
	for i := range f.doctors {
		if f.doctors[i].ID == id {
			f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeAppointmentRepo struct {
	appointments []entity.Appointment
}

func (f *fakeAppointmentRepo) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			appointment := f.appointments[i]
			return &appointment, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByDate(ctx context.Context, date string) ([]entity.Appointment, error) {
	return f.filter(func(a *entity.Appointment) bool { return a.Date == date }), nil
}

func (f *fakeAppointmentRepo) FindByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	return f.filter(func(a *entity.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (f *fakeAppointmentRepo) FindByPatient(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	return f.filter(func(a *entity.Appointment) bool { return a.PatientID == patientID }), nil
}

func (f *fakeAppointmentRepo) FindRecent(ctx context.Context, limit int) ([]entity.Appointment, error) {
	recent := make([]entity.Appointment, len(f.appointments))
	copy(recent, f.appointments)
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	f.appointments = append(f.appointments, *appointment)
	return nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == appointment.ID {
			f.appointments[i] = *appointment
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeAppointmentRepo) filter(keep func(*entity.Appointment) bool) []entity.Appointment {
	matched := []entity.Appointment{}
	for i := range f.appointments {
		if keep(&f.appointments[i]) {
			matched = append(matched, f.appointments[i])
		}
	}
	return matched
}

type fakeBillRepo struct {
	bills []entity.Bill
}

func (f *fakeBillRepo) FindAll(ctx context.Context) ([]entity.Bill, error) {
	return f.bills, nil
}

func (f *fakeBillRepo) FindByID(ctx context.Context, id string) (*entity.Bill, error) {
	for i := range f.bills {
		if f.bills[i].ID == id {
			bill := f.bills[i]
			return &bill, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) FindByPatient(ctx context.Context, patientID string) ([]entity.Bill, error) {
	matched := []entity.Bill{}
	for i := range f.bills {
		if f.bills[i].PatientID == patientID {
			matched = append(matched, f.bills[i])
		}
	}
	return matched, nil
}

func (f *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	f.bills = append(f.bills, *bill)
	return nil
}

func (f *fakeBillRepo) Update(ctx context.Context, bill *entity.Bill) error {
	for i := range f.bills {
		if f.bills[i].ID == bill.ID {
			f.bills[i] = *bill
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeBillRepo) Delete(ctx context.Context, id string) error {
	for i := range f.bills {
		if f.bills[i].ID == id {
			f.bills = append(f.bills[:i], f.bills[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
