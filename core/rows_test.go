package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	csv := "timestamp,platform,backend\n" +
		"2024-03-15T08:30:00Z,darwin,hono\n" +
		"2024-03-16T09:00:00Z,linux,express\n"

	parsed, err := ParseRows(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"timestamp", "platform", "backend"}, parsed.Headers)
	require.Len(t, parsed.Rows, 2)
	assert.Equal(t, "darwin", parsed.Rows[0]["platform"])
	assert.Equal(t, "express", parsed.Rows[1]["backend"])
}

func TestParseRows_HeaderWhitespace(t *testing.T) {
	parsed, err := ParseRows(strings.NewReader(" timestamp , platform \nx,darwin\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"timestamp", "platform"}, parsed.Headers)
	assert.Equal(t, "darwin", parsed.Rows[0]["platform"])
}

func TestParseRows_RaggedRows(t *testing.T) {
	// A short row leaves the surplus header columns absent; a long row
	// drops the surplus fields. Neither is fatal.
	csv := "timestamp,platform,backend\n" +
		"2024-03-15T08:30:00Z,darwin\n" +
		"2024-03-16T09:00:00Z,linux,express,extra,fields\n"

	parsed, err := ParseRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, parsed.Rows, 2)

	_, hasBackend := parsed.Rows[0]["backend"]
	assert.False(t, hasBackend)
	assert.Equal(t, "darwin", parsed.Rows[0]["platform"])

	assert.Equal(t, "express", parsed.Rows[1]["backend"])
	assert.Len(t, parsed.Rows[1], 3)
}

func TestParseRows_QuotedFields(t *testing.T) {
	csv := "timestamp,platform\n" +
		"\"2024-03-15T08:30:00Z\",\"dar,win\"\n"

	parsed, err := ParseRows(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, "dar,win", parsed.Rows[0]["platform"])
}

func TestParseRows_EmptyInput(t *testing.T) {
	_, err := ParseRows(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestParseRows_HeaderOnly(t *testing.T) {
	parsed, err := ParseRows(strings.NewReader("timestamp,platform\n"))
	require.NoError(t, err)
	assert.Empty(t, parsed.Rows)
}
