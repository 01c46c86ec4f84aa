package filedb

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"hospital-management-api/internal/domain/entity"
)

// Fixed ids so the seed appointments and bills can reference the seed
// patients and doctors.
const (
	seedPatientSmith = "5f1c2b2e-8a61-4c8f-9d35-0d7a1a2b3c01"
	seedPatientDavis = "5f1c2b2e-8a61-4c8f-9d35-0d7a1a2b3c02"
	seedPatientBrown = "5f1c2b2e-8a61-4c8f-9d35-0d7a1a2b3c03"

	seedDoctorJohnson  = "7e9d4c3a-1b52-4f6e-8a07-6c5b4a3d2e01"
	seedDoctorChen     = "7e9d4c3a-1b52-4f6e-8a07-6c5b4a3d2e02"
	seedDoctorAnderson = "7e9d4c3a-1b52-4f6e-8a07-6c5b4a3d2e03"
)

var seedTime = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// seedDefaults fills any empty collection with its default records and
// reports whether the snapshot was changed. Seeding is per collection, so a
// store that lost only its doctors gets only doctors back.
func seedDefaults(snap *Snapshot) bool {
	seeded := false

	if len(snap.Users) == 0 {
		snap.Users = seedUsers()
		seeded = true
	}
	if len(snap.Patients) == 0 {
		snap.Patients = seedPatients()
		seeded = true
	}
	if len(snap.Doctors) == 0 {
		snap.Doctors = seedDoctors()
		seeded = true
	}
	if len(snap.Appointments) == 0 {
		snap.Appointments = seedAppointments()
		seeded = true
	}
	if len(snap.Bills) == 0 {
		snap.Bills = seedBills()
		seeded = true
	}

	return seeded
}

func seedUsers() []entity.User {
	return []entity.User{
		{
			ID:        "2c8a6f1d-0e43-4b7a-9c16-3a2b1c0d9e01",
			Name:      "Admin User",
			Email:     "admin@hospital.com",
			Password:  hashPassword("admin123"),
			Role:      entity.RoleAdmin,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:        "2c8a6f1d-0e43-4b7a-9c16-3a2b1c0d9e02",
			Name:      "Dr. Sarah Johnson",
			Email:     "sarah.johnson@hospital.com",
			Password:  hashPassword("doctor123"),
			Role:      entity.RoleDoctor,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:        "2c8a6f1d-0e43-4b7a-9c16-3a2b1c0d9e03",
			Name:      "Mary Wilson",
			Email:     "reception@hospital.com",
			Password:  hashPassword("reception123"),
			Role:      entity.RoleReceptionist,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
	}
}

func seedPatients() []entity.Patient {
	return []entity.Patient{
		{
			ID:           seedPatientSmith,
			Name:         "John Smith",
			Age:          45,
			Gender:       entity.GenderMale,
			Contact:      "555-0101",
			Diagnosis:    "Hypertension",
			AdmittedDate: "2025-01-15",
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			ID:           seedPatientDavis,
			Name:         "Emily Davis",
			Age:          32,
			Gender:       entity.GenderFemale,
			Contact:      "555-0102",
			Diagnosis:    "Type 2 Diabetes",
			AdmittedDate: "2025-02-03",
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			ID:           seedPatientBrown,
			Name:         "Robert Brown",
			Age:          67,
			Gender:       entity.GenderMale,
			Contact:      "555-0103",
			Diagnosis:    "Pneumonia",
			AdmittedDate: "2025-02-20",
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
	}
}

func seedDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:            seedDoctorJohnson,
			Name:          "Dr. Sarah Johnson",
			Specialty:     "Cardiology",
			Contact:       "555-0201",
			AvailableDays: "Monday,Wednesday,Friday",
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:            seedDoctorChen,
			Name:          "Dr. Michael Chen",
			Specialty:     "Neurology",
			Contact:       "555-0202",
			AvailableDays: "Tuesday,Thursday",
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:            seedDoctorAnderson,
			Name:          "Dr. Lisa Anderson",
			Specialty:     "Pediatrics",
			Contact:       "555-0203",
			AvailableDays: "Monday,Tuesday,Thursday",
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
	}
}

func seedAppointments() []entity.Appointment {
	return []entity.Appointment{
		{
			ID:        "9b3e5d7f-2c64-4a8b-b1d9-8e7f6a5b4c01",
			PatientID: seedPatientSmith,
			DoctorID:  seedDoctorJohnson,
			Date:      "2025-03-10",
			Time:      "09:00",
			Status:    entity.StatusScheduled,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:        "9b3e5d7f-2c64-4a8b-b1d9-8e7f6a5b4c02",
			PatientID: seedPatientDavis,
			DoctorID:  seedDoctorChen,
			Date:      "2025-03-11",
			Time:      "10:30",
			Status:    entity.StatusScheduled,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:        "9b3e5d7f-2c64-4a8b-b1d9-8e7f6a5b4c03",
			PatientID: seedPatientBrown,
			DoctorID:  seedDoctorAnderson,
			Date:      "2025-03-09",
			Time:      "14:00",
			Status:    entity.StatusCompleted,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
	}
}

func seedBills() []entity.Bill {
	return []entity.Bill{
		{
			ID:        "4a7c9e1b-3d85-4f2a-a6c8-1b0d9f8e7a01",
			PatientID: seedPatientSmith,
			Items: []entity.BillItem{
				{Description: "Consultation", Cost: decimal.NewFromInt(150)},
				{Description: "Blood Test", Cost: decimal.NewFromInt(85)},
			},
			Total:     decimal.NewFromInt(235),
			Date:      "2025-03-01",
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:        "4a7c9e1b-3d85-4f2a-a6c8-1b0d9f8e7a02",
			PatientID: seedPatientDavis,
			Items: []entity.BillItem{
				{Description: "Consultation", Cost: decimal.NewFromInt(150)},
				{Description: "X-Ray", Cost: decimal.NewFromInt(220)},
			},
			Total:     decimal.NewFromInt(370),
			Date:      "2025-03-05",
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
	}
}

// hashPassword generates the at-rest bcrypt hash for a seed account. Hashing
// happens once, when the collection is first seeded.
func hashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost or oversized input, neither of
		// which can happen with the fixed seed passwords.
		panic(err)
	}
	return string(hash)
}
