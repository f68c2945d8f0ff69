package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/printguard/printguard-api/internal/httpresp"
	"github.com/printguard/printguard-api/internal/store"
)

type TechnicianHandler struct {
	store *store.Store
}

func NewTechnicianHandler(st *store.Store) *TechnicianHandler {
	return &TechnicianHandler{store: st}
}

func (h *TechnicianHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.ListTechnicians(c.Request.Context()))
}
