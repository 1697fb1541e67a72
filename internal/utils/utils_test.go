package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueID(t *testing.T) {
	id, err := GenerateUniqueID(8)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), id)

	other, err := GenerateUniqueID(8)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestISOTime(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	ts := time.Date(2024, 1, 1, 7, 0, 0, 123_000_000, loc)

	assert.Equal(t, "2024-01-01T00:00:00.123Z", ISOTime(ts))

	parsed, err := time.Parse(time.RFC3339, ISOTime(ts))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}
