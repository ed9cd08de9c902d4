package models

import (
	"github.com/google/uuid"
)

// Gift intent statuses. No payment gateway is integrated; intents stay
// pending unless reconciled out of band.
const (
	GiftStatusPending = "pending"
	GiftStatusSuccess = "success"
	GiftStatusFailed  = "failed"
)

// GiftTransaction records a gifting intent from the celebration page.
type GiftTransaction struct {
	ID        uuid.UUID `json:"id"`
	DonorName string    `json:"donor_name"`
	Email     string    `json:"email,omitempty"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Message   string    `json:"message,omitempty"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt int64     `json:"created_at"` // epoch milliseconds
}
