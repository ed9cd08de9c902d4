package models

import (
	"github.com/google/uuid"
)

// BirthdayNote is a guestbook entry. Private notes are hidden from the public
// wall but remain visible to admins. Notes are read-only after creation.
type BirthdayNote struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Message    string    `json:"message"`
	IsPrivate  bool      `json:"is_private"`
	CreatedAt  int64     `json:"created_at"` // epoch milliseconds
}
