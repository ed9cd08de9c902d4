package rsvps

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grace-celebration/backend/internal/models"
)

type fakeStatusStore struct {
	updates []models.Status
	err     error
}

func (f *fakeStatusStore) UpdateStatus(_ context.Context, _ uuid.UUID, status models.Status) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, status)
	return nil
}

func newTestList(store StatusStore, items ...models.RSVP) *GuestList {
	l := NewGuestList(store)
	l.Replace(items)
	return l
}

func TestSetStatusAppliesToViewAndStore(t *testing.T) {
	id := uuid.New()
	store := &fakeStatusStore{}
	l := newTestList(store, models.RSVP{ID: id, ApprovalStatus: "pending", CreatedAt: 100})

	err := l.SetStatus(context.Background(), id, models.StatusApproved)
	require.NoError(t, err)

	items := l.Items()
	assert.Equal(t, "approved", items[0].ApprovalStatus)
	assert.Equal(t, []models.Status{models.StatusApproved}, store.updates)
	assert.Equal(t, int64(100), items[0].CreatedAt)
}

func TestSetStatusRevertsViewOnWriteFailure(t *testing.T) {
	id := uuid.New()
	store := &fakeStatusStore{err: errors.New("write rejected")}
	l := newTestList(store, models.RSVP{ID: id, ApprovalStatus: "declined"})

	err := l.SetStatus(context.Background(), id, models.StatusApproved)
	require.Error(t, err)

	// The displayed state must revert to declined, not remain approved.
	assert.Equal(t, "declined", l.Items()[0].ApprovalStatus)
}

func TestSetStatusSameTargetIsNoOp(t *testing.T) {
	id := uuid.New()
	store := &fakeStatusStore{}
	l := newTestList(store, models.RSVP{ID: id, ApprovalStatus: "approved", CreatedAt: 42})

	err := l.SetStatus(context.Background(), id, models.StatusApproved)
	require.NoError(t, err)
	assert.Empty(t, store.updates, "no write for a re-applied status")
	assert.Equal(t, int64(42), l.Items()[0].CreatedAt)
}

func TestSetStatusNoOpForMissingFieldPendingTarget(t *testing.T) {
	id := uuid.New()
	store := &fakeStatusStore{}
	l := newTestList(store, models.RSVP{ID: id, ApprovalStatus: ""})

	// A record without a stored status already reads as pending.
	err := l.SetStatus(context.Background(), id, models.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, store.updates)
}

func TestSetStatusTransitionsAreOverwrites(t *testing.T) {
	id := uuid.New()
	store := &fakeStatusStore{}
	l := newTestList(store, models.RSVP{ID: id, ApprovalStatus: "pending"})

	require.NoError(t, l.SetStatus(context.Background(), id, models.StatusDeclined))
	require.NoError(t, l.SetStatus(context.Background(), id, models.StatusApproved))

	assert.Equal(t, "approved", l.Items()[0].ApprovalStatus)
	assert.Equal(t, []models.Status{models.StatusDeclined, models.StatusApproved}, store.updates)
}

func TestSetStatusSecondWriteFailureRevertsToFirst(t *testing.T) {
	id := uuid.New()
	store := &fakeStatusStore{}
	l := newTestList(store, models.RSVP{ID: id, ApprovalStatus: "pending"})

	require.NoError(t, l.SetStatus(context.Background(), id, models.StatusDeclined))

	store.err = errors.New("store unreachable")
	err := l.SetStatus(context.Background(), id, models.StatusApproved)
	require.Error(t, err)

	assert.Equal(t, "declined", l.Items()[0].ApprovalStatus)
}

func TestSetStatusUnknownID(t *testing.T) {
	l := newTestList(&fakeStatusStore{}, models.RSVP{ID: uuid.New()})
	err := l.SetStatus(context.Background(), uuid.New(), models.StatusApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceIsLastLoadWins(t *testing.T) {
	store := &fakeStatusStore{}
	first := models.RSVP{ID: uuid.New(), FullName: "First Load"}
	second := models.RSVP{ID: uuid.New(), FullName: "Second Load"}

	l := newTestList(store, first)
	l.Replace([]models.RSVP{second})

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Second Load", items[0].FullName)
}

func TestGuestListStatsAndFilter(t *testing.T) {
	store := &fakeStatusStore{}
	l := newTestList(store,
		models.RSVP{ID: uuid.New(), ApprovalStatus: "approved", CreatedAt: 3},
		models.RSVP{ID: uuid.New(), ApprovalStatus: "", CreatedAt: 2},
		models.RSVP{ID: uuid.New(), ApprovalStatus: "declined", CreatedAt: 1},
	)

	s := l.Stats()
	assert.Equal(t, Stats{Total: 3, Pending: 1, Approved: 1, Declined: 1}, s)

	pending := l.Filter(FilterPending)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), pending[0].CreatedAt)
}

func TestStatusChangeMovesAggregateCounts(t *testing.T) {
	id := uuid.New()
	store := &fakeStatusStore{}
	l := newTestList(store,
		models.RSVP{ID: id, FullName: "Ada Lovelace", ApprovalStatus: "pending"},
		models.RSVP{ID: uuid.New(), ApprovalStatus: "pending"},
	)

	before := l.Stats()
	require.NoError(t, l.SetStatus(context.Background(), id, models.StatusApproved))
	after := l.Stats()

	assert.Equal(t, before.Approved+1, after.Approved)
	assert.Equal(t, before.Pending-1, after.Pending)
	assert.Equal(t, before.Total, after.Total)
}
