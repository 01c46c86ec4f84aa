package filedb

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

func TestPatientRepositoryCreateAndFind(t *testing.T) {
	repo := NewPatientRepository(newTestStore(t))
	ctx := context.Background()

	patient := &entity.Patient{
		Name:         "Alice Green",
		Age:          29,
		Gender:       entity.GenderFemale,
		Contact:      "555-0199",
		Diagnosis:    "Migraine",
		AdmittedDate: "2025-04-01",
	}
	if err := repo.Create(ctx, patient); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if patient.ID == "" {
		t.Fatal("Create() did not assign an id")
	}
	if patient.CreatedAt.IsZero() || patient.UpdatedAt.IsZero() {
		t.Error("Create() did not stamp timestamps")
	}

	found, err := repo.FindByID(ctx, patient.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found == nil {
		t.Fatal("FindByID() returned nil for created patient")
	}
	if found.Name != "Alice Green" {
		t.Errorf("found.Name = %q, want Alice Green", found.Name)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	// 3 seeds plus the new patient, appended last.
	if len(all) != 4 {
		t.Fatalf("FindAll() returned %d patients, want 4", len(all))
	}
	if all[3].ID != patient.ID {
		t.Errorf("new patient not appended at the end")
	}
}

func TestPatientRepositoryFindByIDMissing(t *testing.T) {
	repo := NewPatientRepository(newTestStore(t))

	found, err := repo.FindByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found != nil {
		t.Errorf("FindByID() = %+v, want nil for unknown id", found)
	}
}

func TestPatientRepositoryUpdateMissing(t *testing.T) {
	repo := NewPatientRepository(newTestStore(t))

	err := repo.Update(context.Background(), &entity.Patient{ID: "no-such-id", Name: "Ghost"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestPatientRepositoryDelete(t *testing.T) {
	store := newTestStore(t)
	repo := NewPatientRepository(store)
	ctx := context.Background()

	if err := repo.Delete(ctx, seedPatientDavis); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d patients after delete, want 2", len(all))
	}
	for _, p := range all {
		if p.ID == seedPatientDavis {
			t.Error("deleted patient still present")
		}
	}

	if err := repo.Delete(ctx, seedPatientDavis); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	user, err := repo.FindByEmail(ctx, "admin@hospital.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if user == nil {
		t.Fatal("FindByEmail() returned nil for seed admin")
	}
	if user.Role != entity.RoleAdmin {
		t.Errorf("user.Role = %q, want %q", user.Role, entity.RoleAdmin)
	}

	missing, err := repo.FindByEmail(ctx, "nobody@hospital.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if missing != nil {
		t.Errorf("FindByEmail() = %+v, want nil for unknown email", missing)
	}
}

func TestAppointmentRepositoryFilters(t *testing.T) {
	repo := NewAppointmentRepository(newTestStore(t))
	ctx := context.Background()

	byDate, err := repo.FindByDate(ctx, "2025-03-10")
	if err != nil {
		t.Fatalf("FindByDate() error = %v", err)
	}
	if len(byDate) != 1 || byDate[0].PatientID != seedPatientSmith {
		t.Errorf("FindByDate() = %+v, want the single seed appointment on 2025-03-10", byDate)
	}

	byDoctor, err := repo.FindByDoctor(ctx, seedDoctorChen)
	if err != nil {
		t.Fatalf("FindByDoctor() error = %v", err)
	}
	if len(byDoctor) != 1 || byDoctor[0].PatientID != seedPatientDavis {
		t.Errorf("FindByDoctor() = %+v, want Emily Davis's appointment", byDoctor)
	}

	byPatient, err := repo.FindByPatient(ctx, seedPatientBrown)
	if err != nil {
		t.Fatalf("FindByPatient() error = %v", err)
	}
	if len(byPatient) != 1 || byPatient[0].Status != entity.StatusCompleted {
		t.Errorf("FindByPatient() = %+v, want Robert Brown's completed appointment", byPatient)
	}

	none, err := repo.FindByDate(ctx, "1999-01-01")
	if err != nil {
		t.Fatalf("FindByDate() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("FindByDate() on empty date returned %d appointments", len(none))
	}
}

func TestAppointmentRepositoryFindRecent(t *testing.T) {
	repo := NewAppointmentRepository(newTestStore(t))
	ctx := context.Background()

	// The newly created appointment has the latest CreatedAt and must lead.
	created := &entity.Appointment{
		PatientID: seedPatientSmith,
		DoctorID:  seedDoctorJohnson,
		Date:      "2025-05-01",
		Time:      "11:00",
		Status:    entity.StatusScheduled,
	}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	recent, err := repo.FindRecent(ctx, 2)
	if err != nil {
		t.Fatalf("FindRecent() error = %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("FindRecent(2) returned %d appointments", len(recent))
	}
	if recent[0].ID != created.ID {
		t.Errorf("most recent appointment = %s, want the newly created one", recent[0].ID)
	}

	all, err := repo.FindRecent(ctx, 10)
	if err != nil {
		t.Fatalf("FindRecent() error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("FindRecent(10) returned %d appointments, want all 4", len(all))
	}
}

func TestBillRepositoryRoundTrip(t *testing.T) {
	repo := NewBillRepository(newTestStore(t))
	ctx := context.Background()

	bill := &entity.Bill{
		PatientID: seedPatientBrown,
		Items: []entity.BillItem{
			{Description: "Chest X-Ray", Cost: decimal.NewFromInt(220)},
			{Description: "Antibiotics", Cost: decimal.RequireFromString("45.50")},
		},
		Total: decimal.RequireFromString("265.50"),
		Date:  "2025-04-10",
	}
	if err := repo.Create(ctx, bill); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, bill.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found == nil {
		t.Fatal("FindByID() returned nil for created bill")
	}
	if len(found.Items) != 2 {
		t.Fatalf("bill has %d items, want 2", len(found.Items))
	}
	if !found.Total.Equal(decimal.RequireFromString("265.50")) {
		t.Errorf("bill total = %s, want 265.50", found.Total)
	}

	byPatient, err := repo.FindByPatient(ctx, seedPatientBrown)
	if err != nil {
		t.Fatalf("FindByPatient() error = %v", err)
	}
	if len(byPatient) != 1 || byPatient[0].ID != bill.ID {
		t.Errorf("FindByPatient() = %+v, want only the new bill", byPatient)
	}
}

func TestConcurrentCreatesAllPersist(t *testing.T) {
	store := newTestStore(t)
	repo := NewDoctorRepository(store)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, &entity.Doctor{
				Name:          "Dr. Concurrent",
				Specialty:     "General",
				Contact:       "555-0300",
				AvailableDays: "Monday",
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 3+workers {
		t.Fatalf("got %d doctors, want %d", len(all), 3+workers)
	}

	seen := make(map[string]bool)
	for _, d := range all {
		if seen[d.ID] {
			t.Fatalf("duplicate doctor id %s", d.ID)
		}
		seen[d.ID] = true
	}
}
