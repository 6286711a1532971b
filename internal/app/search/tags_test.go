package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagPredicateEmpty(t *testing.T) {
	_, ok := tagPredicate(nil)
	assert.False(t, ok)

	// An empty list for a tag type is the same as omitting the type.
	_, ok = tagPredicate(map[string][]string{"keywords": {}})
	assert.False(t, ok)
}

func TestTagPredicateSingleType(t *testing.T) {
	pred, ok := tagPredicate(map[string][]string{
		"keywords": {"AI", "ML"},
	})
	require.True(t, ok)

	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "c.id IN (")
	assert.Contains(t, sql, "(tt.name = ? AND t.name IN (?,?))")
	assert.Contains(t, sql, "GROUP BY ct.course_id")
	assert.Contains(t, sql, "HAVING COUNT(*) FILTER (WHERE tt.name = ?) > 0")
	assert.Equal(t, []interface{}{"keywords", "AI", "ML", "keywords"}, args)
}

func TestTagPredicatePerTypeCoverage(t *testing.T) {
	// AND across tag types, OR within a type: a course tagged only
	// available_programs=CS must not pass a keywords=AI filter, so each
	// required type gets its own coverage check after grouping by course.
	pred, ok := tagPredicate(map[string][]string{
		"keywords":           {"AI"},
		"available_programs": {"CS", "DS"},
	})
	require.True(t, ok)

	sql, args, err := pred.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "(tt.name = ? AND t.name IN (?,?)) OR (tt.name = ? AND t.name IN (?))")
	assert.Contains(t, sql, "COUNT(*) FILTER (WHERE tt.name = ?) > 0 AND COUNT(*) FILTER (WHERE tt.name = ?) > 0")
	// Tag types iterate in sorted order so the SQL stays deterministic.
	assert.Equal(t, []interface{}{
		"available_programs", "CS", "DS",
		"keywords", "AI",
		"available_programs", "keywords",
	}, args)
}

func TestTagPredicateDeterministic(t *testing.T) {
	filters := map[string][]string{
		"keywords":           {"AI"},
		"available_programs": {"CS"},
		"available_levels":   {"MA1"},
	}
	first, ok := tagPredicate(filters)
	require.True(t, ok)
	firstSQL, firstArgs, err := first.ToSql()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		pred, ok := tagPredicate(filters)
		require.True(t, ok)
		sql, args, err := pred.ToSql()
		require.NoError(t, err)
		assert.Equal(t, firstSQL, sql)
		assert.Equal(t, firstArgs, args)
	}
}
