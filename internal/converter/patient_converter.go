package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		Name:         patient.Name,
		Age:          patient.Age,
		Gender:       patient.Gender,
		Contact:      patient.Contact,
		Diagnosis:    patient.Diagnosis,
		AdmittedDate: patient.AdmittedDate,
		CreatedAt:    patient.CreatedAt,
		UpdatedAt:    patient.UpdatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
