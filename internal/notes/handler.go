package notes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grace-celebration/backend/internal/models"
	"github.com/grace-celebration/backend/pkg/response"
)

// CreateRequest is the body for POST /notes.
type CreateRequest struct {
	AuthorName string `json:"author_name" binding:"required"`
	Message    string `json:"message" binding:"required"`
	IsPrivate  bool   `json:"is_private"`
}

// Handler handles guestbook note HTTP endpoints.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a notes handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

// Create handles POST /notes.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	note := &models.BirthdayNote{
		AuthorName: req.AuthorName,
		Message:    req.Message,
		IsPrivate:  req.IsPrivate,
		CreatedAt:  time.Now().UnixMilli(),
	}
	if err := h.repo.Create(c.Request.Context(), note); err != nil {
		h.logger.Error("create note failed", zap.Error(err))
		response.Internal(c, "failed to add note")
		return
	}
	response.Created(c, gin.H{"id": note.ID, "created_at": note.CreatedAt})
}

// ListPublic handles GET /notes. Private notes are excluded.
func (h *Handler) ListPublic(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context(), false)
	if err != nil {
		h.logger.Error("list notes failed", zap.Error(err))
		response.Internal(c, "failed to load notes")
		return
	}
	response.OK(c, list)
}

// ListAll handles GET /admin/notes. Includes private notes.
func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context(), true)
	if err != nil {
		h.logger.Error("list notes failed", zap.Error(err))
		response.Internal(c, "failed to load notes")
		return
	}
	response.OK(c, list)
}
