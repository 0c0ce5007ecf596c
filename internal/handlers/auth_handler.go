package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/belezaclinic/clinic-manager/internal/auth"
	"github.com/belezaclinic/clinic-manager/internal/config"
	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/httpresp"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
)

type AuthHandler struct {
	store  *store.Store
	config *config.Config
}

func NewAuthHandler(s *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: s, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	profile, err := auth.Authenticate(req.Email, req.Password)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha incorretos.")
		return
	}

	// Sessão persistida é restaurada como está num próximo startup.
	h.store.Write(store.SlotSession, models.Session{
		Authenticated: true,
		User:          *profile,
	})

	token, err := h.generateToken(profile)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	httpresp.OK(c, gin.H{
		"user":  profile,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Delete(store.SlotSession)
	httpresp.OK(c, gin.H{"status": "logged_out"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.UserProfile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"name": user.Name,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
