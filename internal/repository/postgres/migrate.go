package postgres

import (
	"gorm.io/gorm"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/filedb"
)

// AutoMigrate creates or updates the schema for all five collections.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Patient{},
		&entity.Doctor{},
		&entity.Appointment{},
		&entity.Bill{},
		&entity.BillItem{},
	)
}

// ImportSnapshot replaces the database contents with the given file-store
// snapshot. Existing rows are cleared first so the import is repeatable.
func ImportSnapshot(db *gorm.DB, snap *filedb.Snapshot) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entity.BillItem{},
			&entity.Bill{},
			&entity.Appointment{},
			&entity.Doctor{},
			&entity.Patient{},
			&entity.User{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if len(snap.Users) > 0 {
			if err := tx.Create(&snap.Users).Error; err != nil {
				return err
			}
		}
		if len(snap.Patients) > 0 {
			if err := tx.Create(&snap.Patients).Error; err != nil {
				return err
			}
		}
		if len(snap.Doctors) > 0 {
			if err := tx.Create(&snap.Doctors).Error; err != nil {
				return err
			}
		}
		if len(snap.Appointments) > 0 {
			if err := tx.Create(&snap.Appointments).Error; err != nil {
				return err
			}
		}
		for i := range snap.Bills {
			numberItems(&snap.Bills[i])
			if err := tx.Create(&snap.Bills[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
