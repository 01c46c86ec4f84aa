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

var ErrBillNotFound = errors.New("bill not found")

type BillingUsecase interface {
	GetAll(ctx context.Context) ([]dto.BillResponse, error)
	GetByID(ctx context.Context, id string) (*dto.BillResponse, error)
	GetByPatient(ctx context.Context, patientID string) ([]dto.BillResponse, error)
	Create(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateBillRequest) (*dto.BillResponse, error)
	Delete(ctx context.Context, id string) error
}

type billingUsecase struct {
	log      *logrus.Logger
	billRepo repository.BillRepository
}

func NewBillingUsecase(log *logrus.Logger, billRepo repository.BillRepository) BillingUsecase {
	return &billingUsecase{
		log:      log,
		billRepo: billRepo,
	}
}

func (u *billingUsecase) GetAll(ctx context.Context) ([]dto.BillResponse, error) {
	bills, err := u.billRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list bills: %+v", err)
		return nil, err
	}
	return converter.BillsToResponses(bills), nil
}

func (u *billingUsecase) GetByID(ctx context.Context, id string) (*dto.BillResponse, error) {
	bill, err := u.billRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find bill: %+v", err)
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}
	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) GetByPatient(ctx context.Context, patientID string) ([]dto.BillResponse, error) {
	bills, err := u.billRepo.FindByPatient(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list bills by patient: %+v", err)
		return nil, err
	}
	return converter.BillsToResponses(bills), nil
}

func (u *billingUsecase) Create(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error) {
	// Total is stored as submitted, not reconciled against the item costs.
	bill := &entity.Bill{
		PatientID: req.PatientID,
		Items:     itemsFromRequest(req.Items),
		Total:     req.Total,
		Date:      req.Date,
	}

	if err := u.billRepo.Create(ctx, bill); err != nil {
		u.log.Warnf("Failed to create bill: %+v", err)
		return nil, err
	}

	u.log.WithField("bill_id", bill.ID).Info("Bill created")
	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) Update(ctx context.Context, id string, req *dto.UpdateBillRequest) (*dto.BillResponse, error) {
	bill, err := u.billRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find bill: %+v", err)
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}

	if req.PatientID != nil {
		bill.PatientID = *req.PatientID
	}
	if req.Items != nil {
		bill.Items = itemsFromRequest(req.Items)
	}
	if req.Total != nil {
		bill.Total = *req.Total
	}
	if req.Date != nil {
		bill.Date = *req.Date
	}

	if err := u.billRepo.Update(ctx, bill); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBillNotFound
		}
		u.log.Warnf("Failed to update bill: %+v", err)
		return nil, err
	}

	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) Delete(ctx context.Context, id string) error {
	if err := u.billRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBillNotFound
		}
		u.log.Warnf("Failed to delete bill: %+v", err)
		return err
	}

	u.log.WithField("bill_id", id).Info("Bill deleted")
	return nil
}

func itemsFromRequest(items []dto.BillItemRequest) []entity.BillItem {
	converted := make([]entity.BillItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, entity.BillItem{
			Description: item.Description,
			Cost:        item.Cost,
		})
	}
	return converted
}
