package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lawconnect.backend/internal/domain/entities"
	"lawconnect.backend/internal/interfaces/http/response"
)

type clientService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Client, error)
	ListAll(ctx context.Context) ([]*entities.Client, error)
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateClientInput) (*entities.Client, error)
	GetByCaseRef(ctx context.Context, userID uuid.UUID, caseRefNo int64) (*entities.Client, error)
}

type ClientHandler struct {
	service clientService
}

func NewClientHandler(service clientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// ListClients returns the caller's clients
// GET /api/clients/clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	clients, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orEmpty(clients))
}

// CreateClient registers a client against a case reference
// POST /api/clients/createclient
func (h *ClientHandler) CreateClient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var input entities.CreateClientInput
	if !bindJSON(c, &input, "Missing required client fields") {
		return
	}

	client, err := h.service.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Client created successfully",
		"client":  client,
	})
}

// GetClient returns the caller's client for a case reference
// GET /api/clients/:case_ref_no
func (h *ClientHandler) GetClient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ref, ok := caseRefParam(c)
	if !ok {
		return
	}

	client, err := h.service.GetByCaseRef(c.Request.Context(), userID, ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, client)
}

// ListAllClients returns every client. Admin only.
// GET /api/clients/toknowcl
func (h *ClientHandler) ListAllClients(c *gin.Context) {
	clients, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orEmpty(clients))
}
