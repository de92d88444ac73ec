package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"lawconnect.backend/internal/domain/entities"
	"lawconnect.backend/internal/interfaces/http/response"
)

type caseService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Case, error)
	ListAll(ctx context.Context) ([]*entities.Case, error)
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateCaseInput) (*entities.Case, error)
	Update(ctx context.Context, userID uuid.UUID, caseRefNo int64, input *entities.UpdateCaseInput) (*entities.Case, error)
	Delete(ctx context.Context, userID uuid.UUID, caseRefNo int64) error
	Hearings(ctx context.Context, userID uuid.UUID) ([]null.Time, error)
	Pending(ctx context.Context, userID uuid.UUID) ([]entities.PendingCase, error)
}

// CaseHandler serves the caller's case docket
type CaseHandler struct {
	service caseService
}

func NewCaseHandler(service caseService) *CaseHandler {
	return &CaseHandler{service: service}
}

// ListCases returns the caller's cases
// GET /api/cases/getcases
func (h *CaseHandler) ListCases(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	cases, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orEmpty(cases))
}

// CreateCase opens a case for the caller
// POST /api/cases/createcase
func (h *CaseHandler) CreateCase(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var input entities.CreateCaseInput
	if !bindJSON(c, &input, "Missing required case fields") {
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Case created successfully",
		"case":    created,
	})
}

// UpdateCase edits a case by reference number
// PUT /api/cases/updatecase/:case_ref_no
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ref, ok := caseRefParam(c)
	if !ok {
		return
	}
	var input entities.UpdateCaseInput
	if !bindJSON(c, &input, "Invalid case update") {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, ref, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Case updated successfully",
		"case":    updated,
	})
}

// DeleteCase removes a case by reference number
// DELETE /api/cases/deletecase/:case_ref_no
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ref, ok := caseRefParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, ref); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Case deleted successfully",
	})
}

// Hearings lists the next hearing of every case the caller owns
// GET /api/cases/hearings
func (h *CaseHandler) Hearings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	dates, err := h.service.Hearings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orEmpty(dates))
}

// PendingCases lists the caller's cases with status Pending
// GET /api/cases/pendingcases
func (h *CaseHandler) PendingCases(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	pending, err := h.service.Pending(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orEmpty(pending))
}

// ListAllCases returns every case. Admin only.
// GET /api/cases/toknowc
func (h *CaseHandler) ListAllCases(c *gin.Context) {
	cases, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orEmpty(cases))
}
