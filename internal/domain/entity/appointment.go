package entity

import "time"

// Appointment links a patient and a doctor at a date and time. The reference
// ids are not validated against the referenced collections; readers must
// tolerate dangling references.
type Appointment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID string    `gorm:"type:uuid;index" json:"patientId"`
	DoctorID  string    `gorm:"type:uuid;index" json:"doctorId"`
	Date      string    `gorm:"type:varchar(20);index" json:"date"`
	Time      string    `gorm:"type:varchar(10)" json:"time"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Appointment status constants
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)
