package rsvps

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grace-celebration/backend/internal/models"
)

func TestExportEmptyApprovedSubsetIsNoticeNotFile(t *testing.T) {
	items := []models.RSVP{
		{ID: uuid.New(), FullName: "Pending Person", ApprovalStatus: "pending", CreatedAt: 1000},
		{ID: uuid.New(), FullName: "Declined Person", ApprovalStatus: "declined", CreatedAt: 2000},
	}
	data, err := ExportApprovedCSV(items)
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrNoApprovedGuests)

	_, err = ExportApprovedCSV(nil)
	assert.ErrorIs(t, err, ErrNoApprovedGuests)
}

func TestExportApprovedRow(t *testing.T) {
	createdAt := time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC).UnixMilli()
	items := []models.RSVP{
		{ID: uuid.New(), FullName: "Ada Lovelace", Email: "ada@example.com", GuestsCount: 1, ApprovalStatus: "approved", CreatedAt: createdAt},
		{ID: uuid.New(), FullName: "Not Approved", Email: "no@example.com", ApprovalStatus: "pending", CreatedAt: createdAt},
	}

	data, err := ExportApprovedCSV(items)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2) // header + one approved row
	assert.Equal(t, "Name,Email,Guests,Dietary Restrictions,Date", lines[0])
	assert.Equal(t, `"Ada Lovelace","ada@example.com",1,"",3/9/2026`, lines[1])
}

func TestExportQuotesEmbeddedCommasAndQuotes(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC).UnixMilli()
	items := []models.RSVP{
		{
			ID:                  uuid.New(),
			FullName:            `Grace "Amazing" Obele`,
			Email:               "grace@example.com",
			GuestsCount:         3,
			DietaryRestrictions: "no nuts, no dairy",
			ApprovalStatus:      "approved",
			CreatedAt:           createdAt,
		},
	}

	data, err := ExportApprovedCSV(items)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Grace ""Amazing"" Obele","grace@example.com",3,"no nuts, no dairy",1/2/2026`, lines[1])
}

func TestExportRowCountMatchesApprovedCount(t *testing.T) {
	var items []models.RSVP
	for i := 0; i < 10; i++ {
		status := "approved"
		if i%3 == 0 {
			status = "pending"
		}
		items = append(items, models.RSVP{
			ID:             uuid.New(),
			FullName:       "Guest",
			Email:          "g@example.com",
			ApprovalStatus: status,
			CreatedAt:      int64(10000 - i),
		})
	}

	data, err := ExportApprovedCSV(items)
	require.NoError(t, err)

	approved := ComputeStats(items).Approved
	lines := strings.Split(string(data), "\n")
	assert.Len(t, lines, approved+1)
}

func TestExportIsByteReproducible(t *testing.T) {
	items := []models.RSVP{
		{ID: uuid.New(), FullName: "A", Email: "a@example.com", ApprovalStatus: "approved", CreatedAt: 5000},
		{ID: uuid.New(), FullName: "B", Email: "b@example.com", ApprovalStatus: "approved", CreatedAt: 4000},
	}
	first, err := ExportApprovedCSV(items)
	require.NoError(t, err)
	second, err := ExportApprovedCSV(items)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
