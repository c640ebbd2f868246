package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "rfc3339 with zone",
			raw:    "2024-03-15T08:30:00Z",
			want:   time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "iso without zone",
			raw:    "2024-03-15T08:30:00",
			want:   time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "space separated",
			raw:    "2024-03-15 23:59:59",
			want:   time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "bare date",
			raw:    "2024-03-15",
			want:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "surrounding whitespace",
			raw:    "  2024-03-15T08:30:00Z  ",
			want:   time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "empty", raw: "", wantOK: false},
		{name: "whitespace only", raw: "   ", wantOK: false},
		{name: "garbage", raw: "not-a-date", wantOK: false},
		{name: "partial", raw: "2024-03", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.raw)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveTimestamp(t *testing.T) {
	now := time.Date(2024, 6, 1, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name     string
		raw      string
		wantDate string
		wantHour int
	}{
		{
			name:     "valid rfc3339",
			raw:      "2024-03-15T08:30:00Z",
			wantDate: "2024-03-15",
			wantHour: 8,
		},
		{
			name:     "space separated",
			raw:      "2024-03-15 23:10:00",
			wantDate: "2024-03-15",
			wantHour: 23,
		},
		{
			name:     "bare date keeps hour zero",
			raw:      "2024-03-15",
			wantDate: "2024-03-15",
			wantHour: 0,
		},
		{
			// Malformed input keeps its raw text as the date but can
			// never contribute a real hour.
			name:     "garbage keeps raw text",
			raw:      "not-a-date",
			wantDate: "not-a-date",
			wantHour: 0,
		},
		{
			name:     "garbage with T splits anyway",
			raw:      "garbageTvalue",
			wantDate: "garbage",
			wantHour: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, hour := ResolveTimestamp(tt.raw, now)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.wantHour, hour)
		})
	}
}

func TestResolveTimestamp_EmptyUsesNow(t *testing.T) {
	now := time.Date(2024, 6, 1, 14, 5, 0, 0, time.UTC)

	date, hour := ResolveTimestamp("", now)
	assert.Equal(t, "2024-06-01", date)
	assert.Equal(t, 14, hour)

	// Whitespace is the same as absent.
	date, hour = ResolveTimestamp("   ", now)
	assert.Equal(t, "2024-06-01", date)
	assert.Equal(t, 14, hour)
}

func TestResolveTimestamp_HourIsUTC(t *testing.T) {
	// 23:30 at +02:00 is 21:30 UTC, and the hour bucket follows UTC.
	date, hour := ResolveTimestamp("2024-03-15T23:30:00+02:00", time.Now())
	assert.Equal(t, "2024-03-15", date)
	assert.Equal(t, 21, hour)
}
