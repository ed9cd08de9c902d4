package rsvps

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grace-celebration/backend/internal/models"
	"github.com/grace-celebration/backend/pkg/queue"
	"github.com/grace-celebration/backend/pkg/response"
)

// Store is the RSVP persistence surface the handler needs.
type Store interface {
	Create(ctx context.Context, rsvp *models.RSVP) error
	List(ctx context.Context) ([]models.RSVP, error)
	StatusStore
}

// EmailEnqueuer dispatches the best-effort confirmation email job.
type EmailEnqueuer interface {
	EnqueueEmail(ctx context.Context, payload queue.EmailPayload) error
}

// SubmitRequest is the body for POST /rsvps.
type SubmitRequest struct {
	FullName            string `json:"full_name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone"`
	Attending           *bool  `json:"attending"`
	GuestsCount         int    `json:"guests_count" binding:"gte=0"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	SpecialRequests     string `json:"special_requests"`
}

// SetStatusRequest is the body for PATCH /admin/rsvps/:id/status.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Handler handles RSVP HTTP endpoints.
type Handler struct {
	store  Store
	list   *GuestList
	emails EmailEnqueuer
	logger *zap.Logger
}

// NewHandler creates an RSVP handler. emails may be nil when no queue is
// configured; submissions then skip the confirmation side effect.
func NewHandler(store Store, emails EmailEnqueuer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, list: NewGuestList(store), emails: emails, logger: logger}
}

// Submit handles POST /rsvps. Validation happens before any write; the
// confirmation email is best-effort and never fails the submission.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	attending := true
	if req.Attending != nil {
		attending = *req.Attending
	}
	rsvp := &models.RSVP{
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		Attending:           attending,
		GuestsCount:         req.GuestsCount,
		DietaryRestrictions: req.DietaryRestrictions,
		SpecialRequests:     req.SpecialRequests,
		ApprovalStatus:      string(models.StatusPending),
		CreatedAt:           time.Now().UnixMilli(),
	}
	if err := h.store.Create(c.Request.Context(), rsvp); err != nil {
		h.logger.Error("create rsvp failed", zap.Error(err), zap.String("email", req.Email))
		response.Internal(c, "failed to submit RSVP")
		return
	}

	if h.emails != nil {
		payload := queue.EmailPayload{
			EmailType:      models.EmailTypeRSVPConfirmation,
			RSVPID:         &rsvp.ID,
			RecipientEmail: rsvp.Email,
			FullName:       rsvp.FullName,
			GuestsCount:    rsvp.GuestsCount,
		}
		if err := h.emails.EnqueueEmail(c.Request.Context(), payload); err != nil {
			h.logger.Warn("confirmation email enqueue failed", zap.Error(err), zap.String("rsvp_id", rsvp.ID.String()))
		}
	}

	response.Created(c, gin.H{
		"id":              rsvp.ID,
		"approval_status": rsvp.ApprovalStatus,
		"created_at":      rsvp.CreatedAt,
	})
}

// List handles GET /admin/rsvps?status=all|pending|approved|declined. Each
// call is an explicit reload that replaces the admin snapshot; filtering and
// stats are computed from the loaded set without re-fetching.
func (h *Handler) List(c *gin.Context) {
	f, ok := ParseFilter(c.Query("status"))
	if !ok {
		response.BadRequest(c, "invalid status filter")
		return
	}

	items, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list rsvps failed", zap.Error(err))
		response.Internal(c, "failed to load guest list")
		return
	}
	h.list.Replace(items)

	response.OK(c, gin.H{
		"rsvps": h.list.Filter(f),
		"stats": h.list.Stats(),
	})
}

// SetStatus handles PATCH /admin/rsvps/:id/status. The change is applied to
// the loaded view first and rolled back if the write fails.
func (h *Handler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid rsvp id")
		return
	}
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status required")
		return
	}
	target := models.Status(req.Status)
	if !target.ValidTarget() {
		response.BadRequest(c, "invalid status: must be pending, approved or declined")
		return
	}

	if err := h.setStatus(c.Request.Context(), id, target); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "rsvp not found")
			return
		}
		h.logger.Error("update rsvp status failed", zap.Error(err), zap.String("rsvp_id", id.String()))
		response.Internal(c, "failed to update status")
		return
	}

	response.OK(c, gin.H{"id": id, "approval_status": string(target)})
}

// setStatus applies the change through the guest-list view, reloading the
// snapshot when the record is not in it (stale or never-loaded view).
func (h *Handler) setStatus(ctx context.Context, id uuid.UUID, target models.Status) error {
	err := h.list.SetStatus(ctx, id, target)
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	items, listErr := h.store.List(ctx)
	if listErr != nil {
		return listErr
	}
	h.list.Replace(items)
	return h.list.SetStatus(ctx, id, target)
}

// Export handles GET /admin/rsvps/export. Streams the approved subset as CSV;
// an empty subset yields a notice instead of a file.
func (h *Handler) Export(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list rsvps failed", zap.Error(err))
		response.Internal(c, "failed to load guest list")
		return
	}
	h.list.Replace(items)

	data, err := ExportApprovedCSV(h.list.Items())
	if err != nil {
		if errors.Is(err, ErrNoApprovedGuests) {
			response.OK(c, gin.H{"message": "No approved guests to export."})
			return
		}
		response.Internal(c, "failed to export guest list")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+ExportFilename)
	c.Data(200, ExportContentType, data)
}
