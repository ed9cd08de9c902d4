package emails

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmationIncludesRespondentInTotal(t *testing.T) {
	html, err := RenderConfirmation("Ada Lovelace", 1)
	require.NoError(t, err)
	assert.Contains(t, html, "Dear Ada Lovelace,")
	assert.Contains(t, html, "<strong>Guests:</strong> 2")
	assert.Contains(t, html, "Pending Confirmation")
}

func TestRenderConfirmationDefaultsName(t *testing.T) {
	html, err := RenderConfirmation("", 0)
	require.NoError(t, err)
	assert.Contains(t, html, "Dear Guest,")
	assert.Contains(t, html, "<strong>Guests:</strong> 1")
}

func TestRenderConfirmationNeverBelowOneGuest(t *testing.T) {
	html, err := RenderConfirmation("Ada", -5)
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>Guests:</strong> 1")
}

func TestRenderConfirmationEscapesHTML(t *testing.T) {
	html, err := RenderConfirmation(`<script>alert("x")</script>`, 0)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
