package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usagelab/telesnap/schema"
)

func TestFlattenBreakdown(t *testing.T) {
	b := schema.Breakdown{
		Total:     6,
		Platforms: map[string]int{"darwin": 3, "linux": 2, "win32": 1},
		Backends:  map[string]int{"hono": 4, "express": 2},
		Databases: map[string]int{"postgres": 6},
	}

	rows := flattenBreakdown(b, 10)
	require.Len(t, rows, 6)

	// Dimensions keep a fixed order, values sort by count descending.
	assert.Equal(t, dimensionCount{"platform", "darwin", 3}, rows[0])
	assert.Equal(t, dimensionCount{"platform", "linux", 2}, rows[1])
	assert.Equal(t, dimensionCount{"platform", "win32", 1}, rows[2])
	assert.Equal(t, dimensionCount{"backend", "hono", 4}, rows[3])
	assert.Equal(t, dimensionCount{"backend", "express", 2}, rows[4])
	assert.Equal(t, dimensionCount{"database", "postgres", 6}, rows[5])
}

func TestFlattenBreakdown_TiesSortByValue(t *testing.T) {
	b := schema.Breakdown{
		Platforms: map[string]int{"linux": 2, "darwin": 2, "win32": 2},
	}

	rows := flattenBreakdown(b, 10)
	require.Len(t, rows, 3)
	assert.Equal(t, "darwin", rows[0].Value)
	assert.Equal(t, "linux", rows[1].Value)
	assert.Equal(t, "win32", rows[2].Value)
}

func TestFlattenBreakdown_Limit(t *testing.T) {
	b := schema.Breakdown{
		Platforms: map[string]int{"darwin": 5, "linux": 4, "win32": 3, "aix": 2, "sunos": 1},
	}

	rows := flattenBreakdown(b, 2)
	require.Len(t, rows, 2, "the cap applies per dimension")
	assert.Equal(t, "darwin", rows[0].Value)
	assert.Equal(t, "linux", rows[1].Value)
}

func TestFlattenBreakdown_Empty(t *testing.T) {
	assert.Empty(t, flattenBreakdown(schema.Breakdown{}, 10))
}
