package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyHours(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  float64
		known bool
	}{
		{"weekly", "4 hrs/week", 4.0, true},
		{"weekly fractional", "2.5 hrs/week", 2.5, true},
		{"semester total", "56 hrs/semester", 4.0, true},
		{"semester fractional", "7 hrs/semester", 0.5, true},
		{"not a number", "not a number hrs/week", 0, false},
		{"missing marker", "4 hours per week", 0, false},
		{"marker without unit", "4 hrs", 0, false},
		{"empty", "", 0, false},
		{"negative", "-4 hrs/week", 0, false},
		{"two dots", "4.2.1 hrs/week", 0, false},
		{"padded", "  12 hrs/week  ", 12.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := WeeklyHours(tt.raw)
			assert.Equal(t, tt.known, known)
			if tt.known {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestWorkloadSortExprNullsLast(t *testing.T) {
	// Unknown workloads must sort after numeric ones regardless of direction.
	for _, spec := range []FilterSpec{
		{SortField: SortWorkload, SortOrder: SortAsc, Page: 1, PageSize: 10},
		{SortField: SortWorkload, SortOrder: SortDesc, Page: 1, PageSize: 10},
	} {
		sql, args, err := Compile(spec).Items.ToSql()
		assert.NoError(t, err)
		assert.Contains(t, sql, "NULLS LAST")
		assert.Contains(t, sql, "split_part")
		assert.Contains(t, sql, "/ 14")

		// The rendered statement must carry the regex verbatim. The builder
		// rewrites every bare ? into a numbered placeholder, quoted literals
		// included, so a regression here leaves a $n inside the pattern and
		// the whole expression evaluates to NULL for every row.
		assert.Contains(t, sql, `!~ '^[0-9]+(\.[0-9]+)?$' THEN NULL`)
		assert.NotContains(t, sql, "$1")
		assert.Empty(t, args)
	}
}
