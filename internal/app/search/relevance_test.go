package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevanceExprWeights(t *testing.T) {
	expr, args := relevanceExpr("AI")

	// name x5 + code x5 + exam form x2 + workload x1 + has-professor x3:
	// "AI" against a course named "AI Ethics" with one professor scores 8.
	assert.Equal(t, 2, strings.Count(expr, "* 5"))
	assert.Equal(t, 1, strings.Count(expr, "* 2"))
	assert.Equal(t, 1, strings.Count(expr, "* 1"))
	assert.Equal(t, 1, strings.Count(expr, "* 3"))

	// The professor term is boolean presence, not a match against the query,
	// so only the four text columns consume an argument.
	assert.Equal(t, []interface{}{"%AI%", "%AI%", "%AI%", "%AI%"}, args)
	assert.Contains(t, expr, hasProfessorExpr)
}

func TestRelevanceExprCoalescesNullableColumns(t *testing.T) {
	expr, _ := relevanceExpr("AI")
	assert.Contains(t, expr, "COALESCE(c.exam_form, '')")
	assert.Contains(t, expr, "COALESCE(c.workload, '')")
}

func TestTextFilterCoversAllSearchColumns(t *testing.T) {
	sql, args, err := textFilter("robotics").ToSql()
	require.NoError(t, err)

	for _, col := range []string{"c.course_name", "c.course_code", "c.exam_form", "c.workload", "co_q.prof_name"} {
		assert.Contains(t, sql, col)
	}
	assert.Equal(t, 5, strings.Count(sql, "ILIKE"))
	assert.Len(t, args, 5)
	for _, a := range args {
		assert.Equal(t, "%robotics%", a)
	}
}
