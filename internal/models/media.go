package models

import (
	"github.com/google/uuid"
)

// Media types.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MediaItem is an uploaded photo or video shown in the public and admin
// gallery. Items are hard-deleted by admins; there is no tombstone.
type MediaItem struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Type       string    `json:"type"` // image | video
	MimeType   string    `json:"mime_type"`
	Caption    string    `json:"caption,omitempty"`
	UploadedBy string    `json:"uploaded_by"`
	Path       string    `json:"path"` // storage object key
	CreatedAt  int64     `json:"created_at"` // epoch milliseconds
}
