package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDate(ctx context.Context, date string) ([]entity.Appointment, error) {
	return r.findWhere(ctx, "date = ?", date)
}

func (r *appointmentRepository) FindByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	return r.findWhere(ctx, "doctor_id = ?", doctorID)
}

func (r *appointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	return r.findWhere(ctx, "patient_id = ?", patientID)
}

func (r *appointmentRepository) FindRecent(ctx context.Context, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Appointment{}).Where("id = ?", appointment.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) findWhere(ctx context.Context, query string, arg interface{}) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.db.WithContext(ctx).Where(query, arg).Order("created_at ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}
