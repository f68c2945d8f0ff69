package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/printguard/printguard-api/internal/httperr"
	"github.com/printguard/printguard-api/internal/httpresp"
	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/store"
)

type PrinterHandler struct {
	store *store.Store
}

func NewPrinterHandler(st *store.Store) *PrinterHandler {
	return &PrinterHandler{store: st}
}

// --------- Requests ---------

type CreatePrinterRequest struct {
	ClientID     string `json:"clientId" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serialNumber"`

	PageCounter         int    `json:"pageCounter" binding:"min=0"`
	LastMaintenanceDate string `json:"lastMaintenanceDate"`
	ContractType        string `json:"contractType"`
}

// --------- Handlers ---------

func (h *PrinterHandler) List(c *gin.Context) {
	printers := h.store.ListPrinters(c.Request.Context())

	// o formulário de OS só oferece impressoras do cliente escolhido
	clientID := strings.TrimSpace(c.Query("clientId"))
	if clientID != "" {
		filtered := make([]models.Printer, 0, len(printers))
		for _, p := range printers {
			if p.ClientID == clientID {
				filtered = append(filtered, p)
			}
		}
		printers = filtered
	}

	httpresp.List(c, printers)
}

func (h *PrinterHandler) Create(c *gin.Context) {
	var req CreatePrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := h.store.GetClientByID(c.Request.Context(), req.ClientID); err != nil {
		httperr.BadRequest(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	contract := models.ContractSingle
	if req.ContractType != "" {
		contract = models.ContractType(req.ContractType)
		if !contract.Valid() {
			httperr.BadRequest(c, "invalid_contract_type", "Tipo de contrato inválido.")
			return
		}
	}

	printer := models.Printer{
		ID:                  uuid.NewString(),
		ClientID:            req.ClientID,
		Brand:               req.Brand,
		Model:               req.Model,
		SerialNumber:        req.SerialNumber,
		PageCounter:         req.PageCounter,
		LastMaintenanceDate: req.LastMaintenanceDate,
		ContractType:        contract,
	}

	if err := h.store.AddPrinter(c.Request.Context(), printer); err != nil {
		httperr.Internal(c, "failed_to_create_printer", "Erro ao salvar impressora.")
		return
	}

	c.JSON(http.StatusCreated, printer)
}
