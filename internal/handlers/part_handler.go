package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/printguard/printguard-api/internal/domain/inventory"
	"github.com/printguard/printguard-api/internal/httperr"
	"github.com/printguard/printguard-api/internal/httpresp"
	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/store"
)

type PartHandler struct {
	store *store.Store
}

func NewPartHandler(st *store.Store) *PartHandler {
	return &PartHandler{store: st}
}

// --------- Requests / Responses ---------

type CreatePartRequest struct {
	Name        string  `json:"name" binding:"required"`
	SKU         string  `json:"sku" binding:"required"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	MinQuantity int     `json:"minQuantity" binding:"min=0"`
	Cost        float64 `json:"cost" binding:"min=0"`
	Price       float64 `json:"price" binding:"min=0"`
}

type UpdatePartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// PartResponse agrega a classificação de estoque derivada na leitura
type PartResponse struct {
	models.Part
	StockLevel inventory.StockLevel `json:"stockLevel"`
}

func toPartResponse(p models.Part) PartResponse {
	return PartResponse{Part: p, StockLevel: inventory.Classify(p)}
}

// --------- Handlers ---------

func (h *PartHandler) List(c *gin.Context) {
	parts := h.store.ListParts(c.Request.Context())

	items := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		items = append(items, toPartResponse(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     items,
		"total":    len(items),
		"critical": inventory.CountCritical(parts),
	})
}

func (h *PartHandler) Create(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	part := models.Part{
		ID:          uuid.NewString(),
		Name:        req.Name,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Cost:        req.Cost,
		Price:       req.Price,
	}

	if err := h.store.AddPart(c.Request.Context(), part); err != nil {
		httperr.Internal(c, "failed_to_create_part", "Erro ao salvar peça.")
		return
	}

	c.JSON(http.StatusCreated, toPartResponse(part))
}

// UpdateQuantity grava a quantidade pedida, limitada a zero por baixo — o
// Store em si aceita o valor tal qual vier.
func (h *PartHandler) UpdateQuantity(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	quantity := *req.Quantity
	if quantity < 0 {
		quantity = 0
	}

	part, err := h.store.UpdatePartQuantity(c.Request.Context(), id, quantity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "part_not_found", "Peça não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_update_part", "Erro ao atualizar peça.")
		return
	}

	httpresp.OK(c, toPartResponse(part))
}
