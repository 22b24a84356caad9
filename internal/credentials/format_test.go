package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHashed(t *testing.T) {
	digest := strings.Repeat("N", 53)

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty", "", false},
		{"plaintext", "plaintext123", false},
		{"legacy admin", "admin123", false},
		{"2a", "$2a$10$" + digest, true},
		{"2b", "$2b$12$" + digest, true},
		{"2y", "$2y$04$" + digest, true},
		{"unknown tag", "$2x$10$" + digest, false},
		{"argon tag", "$ar$10$" + digest, false},
		{"one digit cost", "$2a$9$" + digest + "N", false},
		{"non numeric cost", "$2a$1a$" + digest, false},
		{"short digest", "$2a$10$" + digest[:52], false},
		{"long digest", "$2a$10$" + digest + "N", false},
		{"missing separator", "$2a$10" + digest + "N", false},
		{"newline in digest", "$2a$10$" + digest[:52] + "\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHashed(tt.value))
		})
	}
}

func TestClassify(t *testing.T) {
	h := newTestHasher(t)
	hashed, err := h.Hash("admin123")
	require.NoError(t, err)

	assert.Equal(t, FormatHashed, Classify(hashed))
	assert.Equal(t, FormatLegacy, Classify("admin123"))
	assert.Equal(t, FormatLegacy, Classify(""))

	// Shape without a decodable digest still routes to the hashed branch.
	assert.Equal(t, FormatHashed, Classify("$2a$10$"+strings.Repeat("!", 53)))
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "hashed", FormatHashed.String())
	assert.Equal(t, "legacy", FormatLegacy.String())
	assert.Equal(t, "unknown", Format(42).String())
}
