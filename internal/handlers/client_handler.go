package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/printguard/printguard-api/internal/httperr"
	"github.com/printguard/printguard-api/internal/httpresp"
	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/store"
)

type ClientHandler struct {
	store *store.Store
}

func NewClientHandler(st *store.Store) *ClientHandler {
	return &ClientHandler{store: st}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	clients := h.store.ListClients(c.Request.Context())
	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client := models.Client{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Document: req.Document,
		Address:  req.Address,
		Contact:  req.Contact,
	}

	if err := h.store.AddClient(c.Request.Context(), client); err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao salvar cliente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}
