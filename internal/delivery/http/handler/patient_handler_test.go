package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/validator"
)

// stubPatientUsecase serves canned data so the handler's decode, validate and
// error mapping paths can be exercised without storage.
type stubPatientUsecase struct {
	patients map[string]*dto.PatientResponse
}

func newStubPatientUsecase() *stubPatientUsecase {
	return &stubPatientUsecase{
		patients: map[string]*dto.PatientResponse{
			"p1": {ID: "p1", Name: "John Smith", Age: 45, Gender: "male"},
		},
	}
}

func (s *stubPatientUsecase) GetAll(ctx context.Context) ([]dto.PatientResponse, error) {
	all := make([]dto.PatientResponse, 0, len(s.patients))
	for _, p := range s.patients {
		all = append(all, *p)
	}
	return all, nil
}

func (s *stubPatientUsecase) GetByID(ctx context.Context, id string) (*dto.PatientResponse, error) {
	if p, ok := s.patients[id]; ok {
		return p, nil
	}
	return nil, usecase.ErrPatientNotFound
}

func (s *stubPatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	created := &dto.PatientResponse{
		ID:           "new-id",
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		Contact:      req.Contact,
		Diagnosis:    req.Diagnosis,
		AdmittedDate: req.AdmittedDate,
	}
	s.patients[created.ID] = created
	return created, nil
}

func (s *stubPatientUsecase) Update(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	p, ok := s.patients[id]
	if !ok {
		return nil, usecase.ErrPatientNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	return p, nil
}

func (s *stubPatientUsecase) Delete(ctx context.Context, id string) error {
	if _, ok := s.patients[id]; !ok {
		return usecase.ErrPatientNotFound
	}
	delete(s.patients, id)
	return nil
}

func newPatientHandler() *PatientHandler {
	return NewPatientHandler(newStubPatientUsecase(), validator.NewValidator())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestPatientHandlerCreate(t *testing.T) {
	h := newPatientHandler()

	payload := `{"name":"Emily Davis","age":32,"gender":"female","contact":"555-0102","diagnosis":"Type 2 Diabetes","admittedDate":"2025-02-03"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	data := body["data"].(map[string]interface{})
	if data["name"] != "Emily Davis" {
		t.Errorf("data.name = %v", data["name"])
	}
}

func TestPatientHandlerCreateValidation(t *testing.T) {
	h := newPatientHandler()

	// Missing required fields and an out-of-range gender.
	payload := `{"name":"X","gender":"unknown"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["message"] != "Validation failed" {
		t.Errorf("message = %v", body["message"])
	}
	if body["error"] == nil {
		t.Error("error details missing from validation response")
	}
}

func TestPatientHandlerCreateMalformedBody(t *testing.T) {
	h := newPatientHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPatientHandlerGetByID(t *testing.T) {
	h := newPatientHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/patients/p1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "p1"})
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	if data["name"] != "John Smith" {
		t.Errorf("data.name = %v", data["name"])
	}
}

func TestPatientHandlerGetByIDNotFound(t *testing.T) {
	h := newPatientHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/patients/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestPatientHandlerDeleteNotFound(t *testing.T) {
	h := newPatientHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/patients/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
