package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printguard/printguard-api/internal/credentials"
)

type MeHandler struct {
	creds *credentials.Store
}

func NewMeHandler(creds *credentials.Store) *MeHandler {
	return &MeHandler{creds: creds}
}

// GetMe devolve a sessão persistida; o token sozinho não basta se a sessão
// foi encerrada por logout.
func (h *MeHandler) GetMe(c *gin.Context) {
	sess, ok := h.creds.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no_active_session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": sess})
}
