package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grace-celebration/backend/internal/emails"
	"github.com/grace-celebration/backend/pkg/mailer"
	"github.com/grace-celebration/backend/pkg/queue"
)

// DeliveryLog records email delivery outcomes.
type DeliveryLog interface {
	RecordSent(ctx context.Context, rsvpID *uuid.UUID, emailType, recipient, subject string) error
	RecordFailed(ctx context.Context, rsvpID *uuid.UUID, emailType, recipient, subject, errMsg string) error
}

// JobQueue is the queue surface the processor needs.
type JobQueue interface {
	Dequeue(ctx context.Context) (*queue.Job, error)
	Retry(ctx context.Context, job *queue.Job) error
}

// EmailProcessor processes confirmation email jobs: render, send, log.
type EmailProcessor struct {
	sender mailer.Sender
	log    DeliveryLog
	queue  JobQueue
	logger *zap.Logger
}

// NewEmailProcessor creates an email job processor.
func NewEmailProcessor(sender mailer.Sender, log DeliveryLog, q JobQueue, logger *zap.Logger) *EmailProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailProcessor{sender: sender, log: log, queue: q, logger: logger}
}

// Process executes one email job. A delivery failure is returned so the queue
// can retry; the failed attempt is still logged.
func (p *EmailProcessor) Process(ctx context.Context, job *queue.Job) error {
	if job.Type != queue.JobTypeEmail {
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
	var payload queue.EmailPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if payload.RecipientEmail == "" {
		return fmt.Errorf("missing recipient")
	}

	html, err := emails.RenderConfirmation(payload.FullName, payload.GuestsCount)
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	sendErr := p.sender.Send(ctx, mailer.Message{
		To:      payload.RecipientEmail,
		Subject: emails.ConfirmationSubject,
		HTML:    html,
	})
	if sendErr != nil {
		if logErr := p.log.RecordFailed(ctx, payload.RSVPID, payload.EmailType, payload.RecipientEmail, emails.ConfirmationSubject, sendErr.Error()); logErr != nil {
			p.logger.Warn("record email failure failed", zap.Error(logErr))
		}
		return fmt.Errorf("send email: %w", sendErr)
	}

	if err := p.log.RecordSent(ctx, payload.RSVPID, payload.EmailType, payload.RecipientEmail, emails.ConfirmationSubject); err != nil {
		p.logger.Warn("record email log failed", zap.Error(err), zap.String("recipient", payload.RecipientEmail))
	}
	p.logger.Info("confirmation email delivered", zap.String("job_id", job.ID), zap.String("recipient", payload.RecipientEmail))
	return nil
}

// Run starts the worker loop: dequeue, process, retry on error.
func (p *EmailProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("email worker stopping")
			return
		default:
		}

		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			p.logger.Warn("dequeue error", zap.Error(err))
			time.Sleep(queue.RetryBackoff)
			continue
		}
		if job == nil {
			continue
		}

		p.logger.Debug("processing job", zap.String("job_id", job.ID), zap.String("type", string(job.Type)))
		if err := p.Process(ctx, job); err != nil {
			p.logger.Error("job failed", zap.String("job_id", job.ID), zap.Error(err))
			if reErr := p.queue.Retry(ctx, job); reErr != nil {
				p.logger.Error("retry enqueue failed", zap.Error(reErr))
			}
			time.Sleep(queue.RetryBackoff)
			continue
		}
	}
}
