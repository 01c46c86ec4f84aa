package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	items := make([]dto.BillItemResponse, 0, len(bill.Items))
	for _, item := range bill.Items {
		items = append(items, dto.BillItemResponse{
			Description: item.Description,
			Cost:        item.Cost,
		})
	}

	return &dto.BillResponse{
		ID:        bill.ID,
		PatientID: bill.PatientID,
		Items:     items,
		Total:     bill.Total,
		Date:      bill.Date,
		CreatedAt: bill.CreatedAt,
		UpdatedAt: bill.UpdatedAt,
	}
}

func BillsToResponses(bills []entity.Bill) []dto.BillResponse {
	responses := make([]dto.BillResponse, 0, len(bills))
	for i := range bills {
		responses = append(responses, *BillToResponse(&bills[i]))
	}
	return responses
}
