package source

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var isoZRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

func TestParseEpochMillis(t *testing.T) {
	assert.Equal(t, "2024-03-10T14:12:00Z", ParseEpochMillis(1710079920000))
}

func TestParseEpochSeconds(t *testing.T) {
	assert.Equal(t, "2024-03-10T14:12:00Z", ParseEpochSeconds(1710079920))
}

func TestParseDateOnly(t *testing.T) {
	got, ok := ParseDateOnly("2025-03-10")
	require.True(t, ok)
	assert.Equal(t, "2025-03-10T00:00:00Z", got)

	_, ok = ParseDateOnly("10/03/2025")
	assert.False(t, ok)
}

func TestParseISO(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-03-10T14:32:00Z", "2025-03-10T14:32:00Z"},
		{"2025-03-10T14:32:00+00:00", "2025-03-10T14:32:00Z"},
		{"2025-03-10T09:32:00-05:00", "2025-03-10T14:32:00Z"},
		{"2025-03-10T14:32:00.123456Z", "2025-03-10T14:32:00Z"},
		{"2025-03-10T14:32:00", "2025-03-10T14:32:00Z"}, // naive, assumed UTC
	}
	for _, c := range cases {
		got, ok := ParseISO(c.in)
		require.True(t, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
		assert.Regexp(t, isoZRe, got)
	}

	_, ok := ParseISO("yesterday-ish")
	assert.False(t, ok)
}

func TestParseLoose(t *testing.T) {
	got, ok := ParseLoose("2025-03-10T14:32:00Z")
	require.True(t, ok)
	assert.Equal(t, "2025-03-10T14:32:00Z", got)

	got, ok = ParseLoose("Mar 10, 2025")
	require.True(t, ok)
	assert.Equal(t, "2025-03-10T00:00:00Z", got)
}

func TestPostedAtFromRaw(t *testing.T) {
	assert.Equal(t, "2024-03-10T14:12:00Z", PostedAtFromRaw(float64(1710079920000), ParseEpochMillis))
	assert.Equal(t, "2025-03-10T14:32:00Z", PostedAtFromRaw("2025-03-10T14:32:00Z", ParseEpochMillis))
	assert.Equal(t, "", PostedAtFromRaw(nil, ParseEpochMillis))
}
