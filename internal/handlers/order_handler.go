package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/printguard/printguard-api/internal/advisory"
	domain "github.com/printguard/printguard-api/internal/domain/order"
	"github.com/printguard/printguard-api/internal/httperr"
	"github.com/printguard/printguard-api/internal/httpresp"
	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/store"
	ucorder "github.com/printguard/printguard-api/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	store    *store.Store
	advisor  advisory.Advisor
	createUC *ucorder.CreateOrder
	updateUC *ucorder.UpdateOrderStatus
	deleteUC *ucorder.DeleteOrder
}

func NewOrderHandler(
	st *store.Store,
	advisor advisory.Advisor,
	createUC *ucorder.CreateOrder,
	updateUC *ucorder.UpdateOrderStatus,
	deleteUC *ucorder.DeleteOrder,
) *OrderHandler {
	return &OrderHandler{
		store:    st,
		advisor:  advisor,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateOrderRequest struct {
	ClientID     string `json:"clientId" binding:"required"`
	PrinterID    string `json:"printerId" binding:"required"`
	TechnicianID string `json:"technicianId"`
	Priority     string `json:"priority"`
	Description  string `json:"description" binding:"required"`
	Diagnosis    string `json:"diagnosis"`
	Solution     string `json:"solution"`
}

type UpdateOrderStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	Resolution string `json:"resolution"`
}

type AnalyzeOrderRequest struct {
	PrinterID   string `json:"printerId" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.store.ListOrders(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Erro ao listar ordens.")
		return
	}

	status := strings.TrimSpace(c.Query("status"))
	if status != "" {
		filtered := make([]models.ServiceOrder, 0, len(orders))
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	httpresp.List(c, orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	o, err := h.createUC.Execute(c.Request.Context(), ucorder.CreateOrderInput{
		ClientID:     req.ClientID,
		PrinterID:    req.PrinterID,
		TechnicianID: req.TechnicianID,
		Priority:     req.Priority,
		Description:  req.Description,
		Diagnosis:    req.Diagnosis,
		Solution:     req.Solution,
	})
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Não foi possível abrir a OS.")
			return
		}
		httperr.Internal(c, "failed_to_create_order", "Erro ao abrir OS.")
		return
	}

	c.JSON(http.StatusCreated, o)
}

// Analyze envia contexto da impressora ao cliente de IA e devolve o texto
// sugerido. Falha do colaborador degrada para os valores fixos, nunca erro.
func (h *OrderHandler) Analyze(c *gin.Context) {
	var req AnalyzeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	printer, err := h.store.GetPrinterByID(c.Request.Context(), req.PrinterID)
	if err != nil {
		httperr.NotFound(c, "printer_not_found", "Impressora não encontrada.")
		return
	}

	diagnosis := h.advisor.Diagnose(c.Request.Context(), printer, req.Description)
	httpresp.OK(c, diagnosis)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	current, err := h.store.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "order_not_found", "OS não encontrada.")
		return
	}

	// o guarda de transição mora aqui, na borda; o workflow aplica o que
	// for pedido
	if err := domain.CanTransition(domain.Status(current.Status), domain.Status(req.Status)); err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Transição de status inválida.")
			return
		}
		httperr.Internal(c, "failed_to_update_order", "Erro ao atualizar OS.")
		return
	}

	o, err := h.updateUC.Execute(c.Request.Context(), id, domain.Status(req.Status), req.Resolution)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "order_not_found", "OS não encontrada.")
			return
		}
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Não foi possível atualizar a OS.")
			return
		}
		httperr.Internal(c, "failed_to_update_order", "Erro ao atualizar OS.")
		return
	}

	httpresp.OK(c, o)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "order_not_found", "OS não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_delete_order", "Erro ao excluir OS.")
		return
	}

	c.Status(http.StatusNoContent)
}
