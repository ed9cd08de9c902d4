package gifts

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grace-celebration/backend/internal/models"
	"github.com/grace-celebration/backend/pkg/response"
)

// CreateRequest is the body for POST /gifts. This records an intent only;
// no payment gateway is involved.
type CreateRequest struct {
	DonorName string `json:"donor_name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Amount    int64  `json:"amount" binding:"gte=0"`
	Currency  string `json:"currency"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

// Handler handles gift intent HTTP endpoints.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a gifts handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

// Create handles POST /gifts.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	now := time.Now().UnixMilli()
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	reference := req.Reference
	if reference == "" {
		reference = fmt.Sprintf("REF-%d", now)
	}

	gift := &models.GiftTransaction{
		DonorName: req.DonorName,
		Email:     req.Email,
		Amount:    req.Amount,
		Currency:  currency,
		Message:   req.Message,
		Reference: reference,
		Status:    models.GiftStatusPending,
		CreatedAt: now,
	}
	if err := h.repo.Create(c.Request.Context(), gift); err != nil {
		h.logger.Error("record gift intent failed", zap.Error(err))
		response.Internal(c, "failed to record gift")
		return
	}
	response.Created(c, gin.H{"id": gift.ID, "reference": gift.Reference, "status": gift.Status})
}

// List handles GET /admin/gifts.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list gifts failed", zap.Error(err))
		response.Internal(c, "failed to load gifts")
		return
	}
	response.OK(c, list)
}
