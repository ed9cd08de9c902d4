package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grace-celebration/backend/pkg/utils"
)

func TestVerifyAdminPlainCode(t *testing.T) {
	g := NewGate("@50&Grace", "", nil)
	assert.True(t, g.VerifyAdmin("@50&Grace"))
	assert.False(t, g.VerifyAdmin("@50&grace"))
	assert.False(t, g.VerifyAdmin(""))
}

func TestVerifyAdminHashedCodeTakesPrecedence(t *testing.T) {
	hash, err := utils.HashCode("s3cret")
	require.NoError(t, err)

	g := NewGate("ignored-plain", hash, nil)
	assert.True(t, g.VerifyAdmin("s3cret"))
	assert.False(t, g.VerifyAdmin("ignored-plain"))
}

func TestVerifyAdminUnconfiguredNeverMatches(t *testing.T) {
	g := NewGate("", "", nil)
	assert.False(t, g.VerifyAdmin(""))
	assert.False(t, g.VerifyAdmin("anything"))
}

func TestVerifyGuestIsCaseInsensitive(t *testing.T) {
	g := NewGate("admin", "", []string{"OBELE50", "grace50", " family "})

	assert.True(t, g.VerifyGuest("OBELE50"))
	assert.True(t, g.VerifyGuest("obele50"))
	assert.True(t, g.VerifyGuest("Grace50"))
	assert.True(t, g.VerifyGuest("  family"))
	assert.False(t, g.VerifyGuest("OBELE51"))
	assert.False(t, g.VerifyGuest(""))
}
