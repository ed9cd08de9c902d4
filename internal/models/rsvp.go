package models

import (
	"github.com/google/uuid"
)

// Status is the admin-controlled approval state of an RSVP. It is independent
// of the guest's own attending answer.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// ParseStatus maps a raw status string to a Status. Empty or unknown values
// read as pending; records written before the approval workflow existed carry
// no status at all.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusApproved:
		return StatusApproved
	case StatusDeclined:
		return StatusDeclined
	default:
		return StatusPending
	}
}

// ValidTarget reports whether s is an acceptable target for a status transition.
func (s Status) ValidTarget() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// RSVP is a guest's reply record to the event invitation.
type RSVP struct {
	ID                  uuid.UUID `json:"id"`
	FullName            string    `json:"full_name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone,omitempty"`
	Attending           bool      `json:"attending"`
	GuestsCount         int       `json:"guests_count"`
	DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
	SpecialRequests     string    `json:"special_requests,omitempty"`
	ApprovalStatus      string    `json:"approval_status"`
	CreatedAt           int64     `json:"created_at"` // epoch milliseconds; sole ordering key
}

// Status returns the normalized approval status. Every consumer (display,
// filter, aggregate, export) goes through this accessor so a missing field is
// interpreted in exactly one place.
func (r *RSVP) Status() Status {
	return ParseStatus(r.ApprovalStatus)
}
