package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/printguard/printguard-api/internal/config"
	"github.com/printguard/printguard-api/internal/credentials"
	"github.com/printguard/printguard-api/internal/httperr"
	"github.com/printguard/printguard-api/internal/models"
)

type AuthHandler struct {
	creds  *credentials.Store
	config *config.Config
}

func NewAuthHandler(creds *credentials.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{creds: creds, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=3"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	sess, ok, err := h.creds.Register(c.Request.Context(), req.Name, email, req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_register", "Erro ao registrar usuário.")
		return
	}
	if !ok {
		httperr.Conflict(c, "email_already_registered", "E-mail já cadastrado.")
		return
	}

	token, err := h.generateToken(sess)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  sess,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	sess, ok, err := h.creds.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_login", "Erro ao efetuar login.")
		return
	}
	if !ok {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	token, err := h.generateToken(sess)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  sess,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.creds.Logout(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_logout", "Erro ao encerrar sessão.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(sess models.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":      sess.Email,
		"name":     sess.Name,
		"role":     sess.Role,
		"initials": sess.Initials,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
