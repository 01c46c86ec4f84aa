package entity

import "time"

// Doctor represents a practicing doctor. AvailableDays is a comma-joined list
// of day names, kept denormalized exactly as the client submits it.
type Doctor struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialty     string    `gorm:"type:varchar(255);not null" json:"specialty"`
	Contact       string    `gorm:"type:varchar(50)" json:"contact"`
	AvailableDays string    `gorm:"type:varchar(255)" json:"availableDays"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Doctor) TableName() string {
	return "doctors"
}
