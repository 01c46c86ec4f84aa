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

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentUsecase interface {
	GetAll(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	GetByDate(ctx context.Context, date string) ([]dto.AppointmentResponse, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]dto.AppointmentResponse, error)
	GetByPatient(ctx context.Context, patientID string) ([]dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(log *logrus.Logger, appointmentRepo repository.AppointmentRepository) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByDate(ctx context.Context, date string) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByDate(ctx, date)
	if err != nil {
		u.log.Warnf("Failed to list appointments by date: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetByDoctor(ctx context.Context, doctorID string) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctor(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments by doctor: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetByPatient(ctx context.Context, patientID string) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatient(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments by patient: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	// Reference ids are stored as given; they are not validated against the
	// patient and doctor collections.
	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.WithField("appointment_id", appointment.ID).Info("Appointment created")
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.PatientID != nil {
		appointment.PatientID = *req.PatientID
	}
	if req.DoctorID != nil {
		appointment.DoctorID = *req.DoctorID
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id string) error {
	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.log.WithField("appointment_id", id).Info("Appointment deleted")
	return nil
}
