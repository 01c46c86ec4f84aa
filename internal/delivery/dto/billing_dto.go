package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type BillItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Cost        decimal.Decimal `json:"cost" validate:"required"`
}

type CreateBillRequest struct {
	PatientID string            `json:"patientId" validate:"required"`
	Items     []BillItemRequest `json:"items" validate:"required,min=1,dive"`
	Total     decimal.Decimal   `json:"total" validate:"required"`
	Date      string            `json:"date" validate:"required"`
}

type UpdateBillRequest struct {
	PatientID *string           `json:"patientId"`
	Items     []BillItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Total     *decimal.Decimal  `json:"total"`
	Date      *string           `json:"date"`
}

// Response DTOs

type BillItemResponse struct {
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
}

type BillResponse struct {
	ID        string             `json:"id"`
	PatientID string             `json:"patientId"`
	Items     []BillItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Date      string             `json:"date"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
