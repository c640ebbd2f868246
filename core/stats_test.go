package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/usagelab/telesnap/schema"
)

func TestBuildBreakdown(t *testing.T) {
	records := []schema.AnalyticsRecord{
		{Date: "2024-03-16", Platform: "darwin", Backend: "hono", Database: "postgres"},
		{Date: "2024-03-15", Platform: "darwin", Backend: "express", Database: "none"},
		{Date: "2024-03-20", Platform: "linux", Backend: "hono", Database: "sqlite"},
	}

	b := BuildBreakdown(records)
	assert.Equal(t, 3, b.Total)
	assert.Equal(t, "2024-03-15", b.FirstDate)
	assert.Equal(t, "2024-03-20", b.LastDate)
	assert.Equal(t, map[string]int{"darwin": 2, "linux": 1}, b.Platforms)
	assert.Equal(t, map[string]int{"hono": 2, "express": 1}, b.Backends)
	assert.Equal(t, map[string]int{"postgres": 1, "none": 1, "sqlite": 1}, b.Databases)
}

func TestBuildBreakdown_Empty(t *testing.T) {
	b := BuildBreakdown(nil)
	assert.Zero(t, b.Total)
	assert.Empty(t, b.FirstDate)
	assert.Empty(t, b.LastDate)
	assert.Empty(t, b.Platforms)
}
