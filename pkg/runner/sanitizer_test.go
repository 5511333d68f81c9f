package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Write spec", "Write spec"},
		{"keeps whitespace controls", "a\tb\r\n", "a\tb\r\n"},
		{"strips escape and bell", "a\x1b[0m\x07b", "a[0mb"},
		{"unicode", "Tarefa ✓", "Tarefa ✓"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeInput_Rejects(t *testing.T) {
	_, err := SanitizeInput(string([]byte{0xff, 0xfe}))
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	_, err = SanitizeInput(strings.Repeat("x", DefaultMaxInputSize+1))
	assert.ErrorIs(t, err, ErrInputTooLarge)

	t.Setenv(EnvMaxInputSize, "4")
	_, err = SanitizeInput("12345")
	assert.ErrorIs(t, err, ErrInputTooLarge)
}
