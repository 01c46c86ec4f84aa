package usecase

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newPatientFixture() *fakePatientRepo {
	return &fakePatientRepo{patients: []entity.Patient{
		{
			ID:           "p1",
			Name:         "John Smith",
			Age:          45,
			Gender:       entity.GenderMale,
			Contact:      "555-0101",
			Diagnosis:    "Hypertension",
			AdmittedDate: "2025-01-15",
		},
	}}
}

func TestPatientUpdateAppliesOnlyPresentFields(t *testing.T) {
	repo := newPatientFixture()
	u := NewPatientUsecase(logrus.New(), repo)

	updated, err := u.Update(context.Background(), "p1", &dto.UpdatePatientRequest{
		Age:       intPtr(46),
		Diagnosis: strPtr("Hypertension, controlled"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Age != 46 {
		t.Errorf("Age = %d, want 46", updated.Age)
	}
	if updated.Diagnosis != "Hypertension, controlled" {
		t.Errorf("Diagnosis = %q", updated.Diagnosis)
	}
	// Absent fields keep their stored values.
	if updated.Name != "John Smith" {
		t.Errorf("Name = %q, want unchanged John Smith", updated.Name)
	}
	if updated.Contact != "555-0101" {
		t.Errorf("Contact = %q, want unchanged 555-0101", updated.Contact)
	}
}

func TestPatientUpdateEmptyRequestChangesNothing(t *testing.T) {
	repo := newPatientFixture()
	u := NewPatientUsecase(logrus.New(), repo)

	updated, err := u.Update(context.Background(), "p1", &dto.UpdatePatientRequest{})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Name != "John Smith" || updated.Age != 45 || updated.Diagnosis != "Hypertension" {
		t.Errorf("empty update changed the record: %+v", updated)
	}
}

func TestPatientUpdatePresentEmptyStringClears(t *testing.T) {
	repo := newPatientFixture()
	u := NewPatientUsecase(logrus.New(), repo)

	// An explicit empty string is a value, not an omission.
	updated, err := u.Update(context.Background(), "p1", &dto.UpdatePatientRequest{
		Contact: strPtr(""),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Contact != "" {
		t.Errorf("Contact = %q, want cleared", updated.Contact)
	}
}

func TestPatientUpdateMissing(t *testing.T) {
	u := NewPatientUsecase(logrus.New(), newPatientFixture())

	_, err := u.Update(context.Background(), "no-such-id", &dto.UpdatePatientRequest{Name: strPtr("X")})
	if err != ErrPatientNotFound {
		t.Errorf("Update() error = %v, want ErrPatientNotFound", err)
	}
}

func TestPatientCreateAndDelete(t *testing.T) {
	repo := newPatientFixture()
	u := NewPatientUsecase(logrus.New(), repo)
	ctx := context.Background()

	created, err := u.Create(ctx, &dto.CreatePatientRequest{
		Name:         "Emily Davis",
		Age:          32,
		Gender:       entity.GenderFemale,
		Contact:      "555-0102",
		Diagnosis:    "Type 2 Diabetes",
		AdmittedDate: "2025-02-03",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Error("Create() response has no id")
	}

	if err := u.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := u.Delete(ctx, created.ID); err != ErrPatientNotFound {
		t.Errorf("second Delete() error = %v, want ErrPatientNotFound", err)
	}
}
