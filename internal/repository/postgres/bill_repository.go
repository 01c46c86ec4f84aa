package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *billRepository) FindAll(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	if err := r.db.WithContext(ctx).Preload("Items", orderedItems).Order("created_at ASC").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) FindByID(ctx context.Context, id string) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindByPatient(ctx context.Context, patientID string) ([]entity.Bill, error) {
	var bills []entity.Bill
	if err := r.db.WithContext(ctx).Preload("Items", orderedItems).Where("patient_id = ?", patientID).Order("created_at ASC").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.NewString()
	}
	numberItems(bill)
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	numberItems(bill)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Bill{}).Where("id = ?", bill.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return repository.ErrNotFound
		}
		// Line items are replaced wholesale on every update.
		if err := tx.Where("bill_id = ?", bill.ID).Delete(&entity.BillItem{}).Error; err != nil {
			return err
		}
		return tx.Save(bill).Error
	})
}

func (r *billRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&entity.BillItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entity.Bill{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

// numberItems stamps the bill id and insertion order onto each line item so
// the child rows round-trip in the order the client sent them.
func numberItems(bill *entity.Bill) {
	for i := range bill.Items {
		bill.Items[i].BillID = bill.ID
		bill.Items[i].Position = i
	}
}
