package rsvps

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grace-celebration/backend/internal/models"
)

func sampleGuests() []models.RSVP {
	return []models.RSVP{
		{ID: uuid.New(), FullName: "Newest", ApprovalStatus: "approved", CreatedAt: 4000},
		{ID: uuid.New(), FullName: "Second", ApprovalStatus: "declined", CreatedAt: 3000},
		{ID: uuid.New(), FullName: "Third", ApprovalStatus: "pending", CreatedAt: 2000},
		{ID: uuid.New(), FullName: "Oldest", ApprovalStatus: "", CreatedAt: 1000}, // legacy record, no status
	}
}

func TestParseFilter(t *testing.T) {
	for _, raw := range []string{"", "all", "pending", "approved", "declined"} {
		_, ok := ParseFilter(raw)
		assert.True(t, ok, raw)
	}
	_, ok := ParseFilter("bogus")
	assert.False(t, ok)
}

func TestComputeStatsCountsMissingStatusAsPending(t *testing.T) {
	s := ComputeStats(sampleGuests())
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Approved)
	assert.Equal(t, 1, s.Declined)
	assert.Equal(t, s.Total, s.Pending+s.Approved+s.Declined)
}

func TestComputeStatsEmptySnapshot(t *testing.T) {
	s := ComputeStats(nil)
	assert.Equal(t, Stats{}, s)
}

func TestFilterAllReturnsSetUnchanged(t *testing.T) {
	items := sampleGuests()
	got := FilterByStatus(items, FilterAll)
	require.Len(t, got, len(items))
	for i := range items {
		assert.Equal(t, items[i].ID, got[i].ID)
	}
}

func TestFilterBySingleState(t *testing.T) {
	items := sampleGuests()

	pending := FilterByStatus(items, FilterPending)
	require.Len(t, pending, 2)
	assert.Equal(t, "Third", pending[0].FullName)
	assert.Equal(t, "Oldest", pending[1].FullName) // missing status reads as pending

	approved := FilterByStatus(items, FilterApproved)
	require.Len(t, approved, 1)
	assert.Equal(t, "Newest", approved[0].FullName)

	declined := FilterByStatus(items, FilterDeclined)
	require.Len(t, declined, 1)
	assert.Equal(t, "Second", declined[0].FullName)
}

func TestFilterPreservesLoadOrder(t *testing.T) {
	items := sampleGuests()
	pending := FilterByStatus(items, FilterPending)
	require.Len(t, pending, 2)
	assert.Greater(t, pending[0].CreatedAt, pending[1].CreatedAt)
}
