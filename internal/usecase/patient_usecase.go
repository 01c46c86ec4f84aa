package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	GetAll(ctx context.Context) ([]dto.PatientResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id string) error
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) GetAll(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		Contact:      req.Contact,
		Diagnosis:    req.Diagnosis,
		AdmittedDate: req.AdmittedDate,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.WithField("patient_id", patient.ID).Info("Patient created")
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// A field is applied only when present in the payload; absent fields keep
	// their stored value.
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Contact != nil {
		patient.Contact = *req.Contact
	}
	if req.Diagnosis != nil {
		patient.Diagnosis = *req.Diagnosis
	}
	if req.AdmittedDate != nil {
		patient.AdmittedDate = *req.AdmittedDate
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id string) error {
	if err := u.patientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPatientNotFound
		}
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	u.log.WithField("patient_id", id).Info("Patient deleted")
	return nil
}
