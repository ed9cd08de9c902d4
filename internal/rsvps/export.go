package rsvps

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/grace-celebration/backend/internal/models"
)

// ErrNoApprovedGuests signals an export no-op: nothing approved yet, so no
// file should be produced.
var ErrNoApprovedGuests = errors.New("no approved guests to export")

// ExportFilename is the download filename for the approved-guest export.
const ExportFilename = "approved_guests.csv"

// ExportContentType is the MIME type for the export download.
const ExportContentType = "text/csv;charset=utf-8"

// ExportApprovedCSV renders the approved subset of items as CSV in input
// order. Name, Email and Dietary Restrictions are double-quoted to tolerate
// embedded commas; the date column is the record's creation day. Output is
// byte-reproducible for a fixed input set.
func ExportApprovedCSV(items []models.RSVP) ([]byte, error) {
	var approved []models.RSVP
	for i := range items {
		if items[i].Status() == models.StatusApproved {
			approved = append(approved, items[i])
		}
	}
	if len(approved) == 0 {
		return nil, ErrNoApprovedGuests
	}

	lines := make([]string, 0, len(approved)+1)
	lines = append(lines, "Name,Email,Guests,Dietary Restrictions,Date")
	for i := range approved {
		r := &approved[i]
		lines = append(lines, strings.Join([]string{
			quote(r.FullName),
			quote(r.Email),
			strconv.Itoa(r.GuestsCount),
			quote(r.DietaryRestrictions),
			exportDate(r.CreatedAt),
		}, ","))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// exportDate formats epoch milliseconds as M/D/YYYY in UTC so a fixed input
// set always produces identical bytes.
func exportDate(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("1/2/2006")
}
