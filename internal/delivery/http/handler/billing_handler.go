package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

// GetAll handles listing all bills
// @Summary List bills
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /billing [get]
func (h *BillingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billingUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bills")
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}

// GetByID handles getting a single bill
// @Summary Get bill by id
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /billing/{id} [get]
func (h *BillingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	bill, err := h.billingUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		default:
			response.InternalServerError(w, "Failed to get bill")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bill retrieved successfully", bill)
}

// GetByPatient handles listing a patient's bills
// @Summary List bills by patient
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient ID"
// @Success 200 {object} response.Response
// @Router /billing/patient/{patientId} [get]
func (h *BillingHandler) GetByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	bills, err := h.billingUsecase.GetByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get bills")
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}

// Create handles bill creation
// @Summary Create bill
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBillRequest true "Create Bill Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /billing [post]
func (h *BillingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create bill")
		return
	}

	response.Success(w, http.StatusCreated, "Bill created successfully", bill)
}

// Update handles bill update
// @Summary Update bill
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.UpdateBillRequest true "Update Bill Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /billing/{id} [put]
func (h *BillingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		default:
			response.InternalServerError(w, "Failed to update bill")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bill updated successfully", bill)
}

// Delete handles bill removal
// @Summary Delete bill
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /billing/{id} [delete]
func (h *BillingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.billingUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		default:
			response.InternalServerError(w, "Failed to delete bill")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bill deleted successfully", nil)
}
