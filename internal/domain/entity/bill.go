package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Bill amounts serialize as plain JSON numbers, both in API responses and
	// in the snapshot file.
	decimal.MarshalJSONWithoutQuotes = true
}

// BillItem is a single line item on a bill. The bookkeeping columns only
// matter for the postgres backend and stay out of the JSON shape.
type BillItem struct {
	ItemID      uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	BillID      string          `gorm:"type:uuid;index" json:"-"`
	Position    int             `gorm:"not null;default:0" json:"-"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Cost        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
}

func (BillItem) TableName() string {
	return "bill_items"
}

// Bill represents an invoice issued to a patient. Total is stored as
// submitted; the store does not reconcile it against the item costs.
type Bill struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID string          `gorm:"type:uuid;index" json:"patientId"`
	Items     []BillItem      `gorm:"foreignKey:BillID" json:"items"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Date      string          `gorm:"type:varchar(20)" json:"date"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Bill) TableName() string {
	return "bills"
}
