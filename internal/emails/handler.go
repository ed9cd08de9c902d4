package emails

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grace-celebration/backend/internal/models"
	"github.com/grace-celebration/backend/pkg/mailer"
	"github.com/grace-celebration/backend/pkg/queue"
	"github.com/grace-celebration/backend/pkg/response"
)

// SendRequest is the body for POST /api/rsvp-confirmation.
type SendRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FullName    string `json:"full_name"`
	GuestsCount int    `json:"guests_count" binding:"gte=0"`
}

// ResendRequest is the body for POST /admin/emails/resend.
type ResendRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	FullName       string `json:"full_name"`
	GuestsCount    int    `json:"guests_count" binding:"gte=0"`
	RSVPID         string `json:"rsvp_id" binding:"omitempty,uuid"`
}

// Enqueuer dispatches email jobs to the worker.
type Enqueuer interface {
	EnqueueEmail(ctx context.Context, payload queue.EmailPayload) error
}

// Handler handles transactional email HTTP endpoints.
type Handler struct {
	repo   *Repository
	sender mailer.Sender
	jobs   Enqueuer
	logger *zap.Logger
}

// NewHandler creates an emails handler. sender and jobs may be nil when email
// delivery or the queue is not configured.
func NewHandler(repo *Repository, sender mailer.Sender, jobs Enqueuer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, sender: sender, jobs: jobs, logger: logger}
}

// SendConfirmation handles POST /api/rsvp-confirmation: synchronous send of
// the pending-confirmation email. 400 when email is missing, 500 with detail
// on delivery failure.
func (h *Handler) SendConfirmation(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email is required")
		return
	}
	if h.sender == nil {
		response.Internal(c, "email delivery not configured")
		return
	}

	html, err := RenderConfirmation(req.FullName, req.GuestsCount)
	if err != nil {
		h.logger.Error("render confirmation email failed", zap.Error(err))
		response.Internal(c, "failed to render email")
		return
	}

	sendErr := h.sender.Send(c.Request.Context(), mailer.Message{
		To:      req.Email,
		Subject: ConfirmationSubject,
		HTML:    html,
	})
	h.record(c.Request.Context(), nil, req.Email, sendErr)
	if sendErr != nil {
		h.logger.Error("send confirmation email failed", zap.Error(sendErr), zap.String("recipient", req.Email))
		response.Internal(c, "failed to send email: "+sendErr.Error())
		return
	}

	response.OK(c, gin.H{"message": "Email sent successfully"})
}

// List handles GET /admin/emails.
func (h *Handler) List(c *gin.Context) {
	logs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list email logs failed", zap.Error(err))
		response.Internal(c, "failed to load email logs")
		return
	}
	response.OK(c, logs)
}

// Resend handles POST /admin/emails/resend: re-enqueues a confirmation for
// the worker to deliver.
func (h *Handler) Resend(c *gin.Context) {
	var req ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "recipient_email required")
		return
	}
	if h.jobs == nil {
		response.Internal(c, "email queue not configured")
		return
	}

	payload := queue.EmailPayload{
		EmailType:      models.EmailTypeRSVPConfirmation,
		RecipientEmail: req.RecipientEmail,
		FullName:       req.FullName,
		GuestsCount:    req.GuestsCount,
	}
	if req.RSVPID != "" {
		id, err := uuid.Parse(req.RSVPID)
		if err == nil {
			payload.RSVPID = &id
		}
	}
	if err := h.jobs.EnqueueEmail(c.Request.Context(), payload); err != nil {
		h.logger.Error("enqueue resend failed", zap.Error(err))
		response.Internal(c, "failed to queue email")
		return
	}
	response.OK(c, gin.H{"message": "resend queued"})
}

// record writes the delivery outcome to email_logs. Logging failures are
// non-fatal to the send path.
func (h *Handler) record(ctx context.Context, rsvpID *uuid.UUID, recipient string, sendErr error) {
	var err error
	if sendErr != nil {
		err = h.repo.RecordFailed(ctx, rsvpID, models.EmailTypeRSVPConfirmation, recipient, ConfirmationSubject, sendErr.Error())
	} else {
		err = h.repo.RecordSent(ctx, rsvpID, models.EmailTypeRSVPConfirmation, recipient, ConfirmationSubject)
	}
	if err != nil {
		h.logger.Warn("record email log failed", zap.Error(err), zap.String("recipient", recipient))
	}
}
