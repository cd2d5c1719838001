package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResetPassword(t *testing.T) {
	r, err := Render("reset_password", map[string]any{
		"Name":      "A",
		"ResetURL":  "http://localhost/reset-password?token=abc",
		"ExpiresIn": "30m0s",
	})
	require.NoError(t, err)
	assert.Equal(t, "Reset your password", r.Subject)
	assert.NotEmpty(t, r.Text)
	assert.Contains(t, r.HTML, "http://localhost/reset-password?token=abc")
	assert.Contains(t, r.HTML, "Hi A,")
}

func TestRenderWelcomeFallbackName(t *testing.T) {
	r, err := Render("welcome", nil)
	require.NoError(t, err)
	assert.Contains(t, r.HTML, "Hi there,")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("nope", nil)
	assert.Error(t, err)
}
