package entity

import "time"

// Patient represents an admitted patient record.
type Patient struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Age          int       `gorm:"not null" json:"age"`
	Gender       string    `gorm:"type:varchar(10);not null" json:"gender"`
	Contact      string    `gorm:"type:varchar(50)" json:"contact"`
	Diagnosis    string    `gorm:"type:text" json:"diagnosis"`
	AdmittedDate string    `gorm:"type:varchar(20)" json:"admittedDate"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
