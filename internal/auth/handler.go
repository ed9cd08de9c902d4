package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grace-celebration/backend/pkg/response"
)

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}

// ValidateCodeRequest is the body for POST /access/validate.
type ValidateCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// TokenResponse is the login response with the session JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// Handler handles access gate HTTP endpoints.
type Handler struct {
	gate   *Gate
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(gate *Gate, jwt *JWTService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{gate: gate, jwt: jwt, logger: logger}
}

// Login handles POST /auth/login. Exchanges the admin access code for a
// signed, expiring session token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "access_code required")
		return
	}

	if !h.gate.VerifyAdmin(req.AccessCode) {
		h.logger.Warn("admin login rejected", zap.String("client_ip", c.ClientIP()))
		response.Unauthorized(c, "invalid access code")
		return
	}

	token, err := h.jwt.Generate()
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	response.OK(c, TokenResponse{Token: token})
}

// ValidateGuestCode handles POST /access/validate. Checks a guest invitation
// code; always 200 with a valid flag so the client can gate the RSVP modal.
func (h *Handler) ValidateGuestCode(c *gin.Context) {
	var req ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "code required")
		return
	}
	response.OK(c, gin.H{"valid": h.gate.VerifyGuest(req.Code)})
}
