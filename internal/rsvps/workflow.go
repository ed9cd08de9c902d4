package rsvps

import (
	"github.com/grace-celebration/backend/internal/models"
)

// Filter selects which approval states the guest list shows.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterPending  Filter = "pending"
	FilterApproved Filter = "approved"
	FilterDeclined Filter = "declined"
)

// ParseFilter maps a raw query value to a Filter. Empty means all.
func ParseFilter(raw string) (Filter, bool) {
	switch Filter(raw) {
	case "", FilterAll:
		return FilterAll, true
	case FilterPending:
		return FilterPending, true
	case FilterApproved:
		return FilterApproved, true
	case FilterDeclined:
		return FilterDeclined, true
	}
	return "", false
}

// Stats are the aggregate counts for a loaded guest-list snapshot.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Declined int `json:"declined"`
}

// ComputeStats derives aggregate counts. Records with a missing approval
// status count as pending, so Total always equals Pending+Approved+Declined.
func ComputeStats(items []models.RSVP) Stats {
	s := Stats{Total: len(items)}
	for i := range items {
		switch items[i].Status() {
		case models.StatusApproved:
			s.Approved++
		case models.StatusDeclined:
			s.Declined++
		default:
			s.Pending++
		}
	}
	return s
}

// FilterByStatus returns the subset of items matching the filter, preserving
// order. FilterAll returns the input unchanged.
func FilterByStatus(items []models.RSVP, f Filter) []models.RSVP {
	if f == FilterAll {
		return items
	}
	want := models.ParseStatus(string(f))
	out := make([]models.RSVP, 0, len(items))
	for i := range items {
		if items[i].Status() == want {
			out = append(out, items[i])
		}
	}
	return out
}
