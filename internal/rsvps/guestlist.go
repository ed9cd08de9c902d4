package rsvps

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/grace-celebration/backend/internal/models"
)

// ErrNotFound is returned when a status change targets an unknown RSVP.
var ErrNotFound = errors.New("rsvp not found")

// StatusStore commits a status overwrite for one record.
type StatusStore interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) error
}

// GuestList is the admin's loaded view of the RSVP set. Status changes apply
// to the view first and are reverted if the backing write fails, so the view
// never silently diverges from storage. Reloads replace the snapshot
// wholesale; the last load wins.
type GuestList struct {
	mu    sync.Mutex
	items []models.RSVP
	store StatusStore
}

// NewGuestList creates an empty guest list backed by store.
func NewGuestList(store StatusStore) *GuestList {
	return &GuestList{store: store}
}

// Replace swaps in a freshly loaded snapshot. No merging or deduplication
// against the prior set.
func (l *GuestList) Replace(items []models.RSVP) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = make([]models.RSVP, len(items))
	copy(l.items, items)
}

// Len returns the snapshot size.
func (l *GuestList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Items returns a copy of the snapshot in load order.
func (l *GuestList) Items() []models.RSVP {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.RSVP, len(l.items))
	copy(out, l.items)
	return out
}

// Stats returns aggregate counts for the snapshot.
func (l *GuestList) Stats() Stats {
	return ComputeStats(l.Items())
}

// Filter returns the snapshot subset for f, in load order.
func (l *GuestList) Filter(f Filter) []models.RSVP {
	return FilterByStatus(l.Items(), f)
}

// SetStatus overwrites the approval status of one record: apply to the view,
// then commit to the store, reverting the view on failure. Re-applying the
// current status is a no-op and performs no write. The ledger imposes no
// terminal-state guard; approved and declined records stay freely mutable.
func (l *GuestList) SetStatus(ctx context.Context, id uuid.UUID, target models.Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.items {
		if l.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	if l.items[idx].Status() == target {
		return nil
	}

	prev := l.items[idx].ApprovalStatus
	l.items[idx].ApprovalStatus = string(target)

	if err := l.store.UpdateStatus(ctx, id, target); err != nil {
		l.items[idx].ApprovalStatus = prev
		return err
	}
	return nil
}
