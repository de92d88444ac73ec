package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
	domainerrors "lawconnect.backend/internal/domain/errors"
	"lawconnect.backend/internal/interfaces/http/response"
)

type feeService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Fee, error)
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateFeeInput) (*entities.Fee, error)
	Update(ctx context.Context, userID, id uuid.UUID, input *entities.UpdateFeeInput) (*entities.Fee, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// FeeHandler serves fee records
type FeeHandler struct {
	service feeService
}

func NewFeeHandler(service feeService) *FeeHandler {
	return &FeeHandler{service: service}
}

// an id that cannot be parsed names no record
func feeIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Fee record not found"))
		return uuid.Nil, false
	}
	return id, true
}

// ListFees returns the caller's fee records
// GET /api/fees/getfees
func (h *FeeHandler) ListFees(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	fees, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orEmpty(fees))
}

// CreateFee records a fee
// POST /api/fees/createfee
func (h *FeeHandler) CreateFee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var input entities.CreateFeeInput
	if !bindJSON(c, &input, "All required fields (case_ref_no, clientName, fees, amount_paid, pending_fees, payment_mode, due_date) are required.") {
		return
	}

	fee, err := h.service.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Fee record created successfully!",
		"fee":     fee,
	})
}

// UpdateFee applies a partial update
// PUT /api/fees/updatefee/:id
func (h *FeeHandler) UpdateFee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := feeIDParam(c)
	if !ok {
		return
	}
	var input entities.UpdateFeeInput
	if !bindJSON(c, &input, "Invalid fee update") {
		return
	}

	fee, err := h.service.Update(c.Request.Context(), userID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":    "Fee record updated successfully!",
		"updatedFee": fee,
	})
}

// DeleteFee removes a fee record
// DELETE /api/fees/deletefee/:id
func (h *FeeHandler) DeleteFee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := feeIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Fee record deleted successfully!")
}
