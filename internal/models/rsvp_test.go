package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatusDefaultsToPending(t *testing.T) {
	assert.Equal(t, StatusPending, ParseStatus(""))
	assert.Equal(t, StatusPending, ParseStatus("pending"))
	assert.Equal(t, StatusPending, ParseStatus("garbage"))
	assert.Equal(t, StatusApproved, ParseStatus("approved"))
	assert.Equal(t, StatusDeclined, ParseStatus("declined"))
}

func TestRSVPStatusAccessorNormalizesMissingField(t *testing.T) {
	r := RSVP{FullName: "Ada Lovelace"}
	assert.Equal(t, StatusPending, r.Status())

	r.ApprovalStatus = "approved"
	assert.Equal(t, StatusApproved, r.Status())
}

func TestValidTarget(t *testing.T) {
	assert.True(t, StatusPending.ValidTarget())
	assert.True(t, StatusApproved.ValidTarget())
	assert.True(t, StatusDeclined.ValidTarget())
	assert.False(t, Status("").ValidTarget())
	assert.False(t, Status("maybe").ValidTarget())
}
