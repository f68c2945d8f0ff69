package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printguard/printguard-api/internal/advisory"
	"github.com/printguard/printguard-api/internal/domain/inventory"
	domain "github.com/printguard/printguard-api/internal/domain/order"
	"github.com/printguard/printguard-api/internal/httperr"
	"github.com/printguard/printguard-api/internal/store"
)

type DashboardHandler struct {
	store   *store.Store
	advisor advisory.Advisor
}

func NewDashboardHandler(st *store.Store, advisor advisory.Advisor) *DashboardHandler {
	return &DashboardHandler{store: st, advisor: advisor}
}

// Summary calcula os indicadores ao vivo sobre as coleções; nada é
// pré-agregado nem cacheado.
func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := h.store.ListOrders(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao montar o painel.")
		return
	}
	parts := h.store.ListParts(ctx)
	printers := h.store.ListPrinters(ctx)
	clients := h.store.ListClients(ctx)

	statusCounts := map[string]int{}
	totalRevenue := 0.0
	for _, o := range orders {
		statusCounts[o.Status]++
		totalRevenue += o.TotalValue
	}

	openOrders := statusCounts[string(domain.StatusPending)] +
		statusCounts[string(domain.StatusWaitingParts)]

	c.JSON(http.StatusOK, gin.H{
		"totalOrders":     len(orders),
		"openOrders":      openOrders,
		"completedOrders": statusCounts[string(domain.StatusCompleted)],
		"statusCounts":    statusCounts,
		"totalRevenue":    totalRevenue,
		"totalClients":    len(clients),
		"totalPrinters":   len(printers),
		"criticalParts":   inventory.CountCritical(parts),
		"stockCostValue":  inventory.StockCostValue(parts),
	})
}

func (h *DashboardHandler) PreventiveReport(c *gin.Context) {
	printers := h.store.ListPrinters(c.Request.Context())
	report := h.advisor.PreventiveReport(c.Request.Context(), printers)

	c.JSON(http.StatusOK, gin.H{"report": report})
}
