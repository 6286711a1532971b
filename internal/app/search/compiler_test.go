package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wherePart extracts the rendered predicate from a full statement.
func wherePart(t *testing.T, sql string) string {
	t.Helper()
	idx := strings.Index(sql, " WHERE ")
	require.GreaterOrEqual(t, idx, 0, "statement has no WHERE clause: %s", sql)
	rest := sql[idx+len(" WHERE "):]
	if end := strings.Index(rest, " ORDER BY "); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

func TestCompileCountAndItemsShareOnePredicate(t *testing.T) {
	min := 3
	max := 9
	spec := FilterSpec{
		Query:      "machine learning",
		Type:       "optional",
		Section:    "IN",
		Semester:   "Winter",
		CreditsMin: &min,
		CreditsMax: &max,
		MinScores:  map[Aspect]float64{AspectSkills: 0.7, AspectVenture: 0.4},
		Tags:       map[string][]string{"keywords": {"AI"}, "available_programs": {"CS", "DS"}},
		SortField:  SortCredits,
		SortOrder:  SortDesc,
		Page:       2,
		PageSize:   25,
	}
	q := Compile(spec)

	itemsSQL, itemsArgs, err := q.Items.ToSql()
	require.NoError(t, err)
	countSQL, countArgs, err := q.Count.ToSql()
	require.NoError(t, err)

	assert.Equal(t, wherePart(t, countSQL), wherePart(t, itemsSQL))
	assert.Equal(t, countArgs, itemsArgs)

	assert.True(t, strings.HasPrefix(countSQL, "SELECT COUNT(*) FROM courses c"))
	assert.NotContains(t, countSQL, "LIMIT")
	assert.NotContains(t, countSQL, "OFFSET")
	assert.NotContains(t, countSQL, "ORDER BY")

	assert.Contains(t, itemsSQL, "LIMIT 25")
	assert.Contains(t, itemsSQL, "OFFSET 25")
}

func TestCompileRelevanceArgsExtendPredicateArgs(t *testing.T) {
	spec := FilterSpec{
		Query:     "AI",
		SortField: SortRelevance,
		Page:      1,
		PageSize:  20,
	}
	q := Compile(spec)

	itemsSQL, itemsArgs, err := q.Items.ToSql()
	require.NoError(t, err)
	_, countArgs, err := q.Count.ToSql()
	require.NoError(t, err)

	// The relevance sort appends its own arguments after the shared
	// predicate arguments; the predicate itself is untouched.
	require.Greater(t, len(itemsArgs), len(countArgs))
	assert.Equal(t, countArgs, itemsArgs[:len(countArgs)])

	assert.Contains(t, itemsSQL, "::int * 5")
	assert.Contains(t, itemsSQL, "::int * 3")
	assert.Contains(t, itemsSQL, "ORDER BY (")
}

func TestCompileRelevanceInactiveWithoutQuery(t *testing.T) {
	q := Compile(FilterSpec{SortField: SortRelevance, Page: 1, PageSize: 20})
	sql, args, err := q.Items.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY c.course_name ASC")
	assert.NotContains(t, sql, "* 5")
	assert.Empty(t, args)
}

func TestCompileTextQueryFiltersWithoutRelevanceSort(t *testing.T) {
	// A free-text query filters regardless of the active sort key.
	q := Compile(FilterSpec{Query: "AI", SortField: SortCredits, Page: 1, PageSize: 20})
	itemsSQL, itemsArgs, err := q.Items.ToSql()
	require.NoError(t, err)
	_, countArgs, err := q.Count.ToSql()
	require.NoError(t, err)

	assert.Contains(t, itemsSQL, "c.course_name ILIKE")
	assert.Contains(t, itemsSQL, "co_q.prof_name ILIKE")
	assert.Equal(t, countArgs, itemsArgs)
	assert.Len(t, countArgs, 5)
}

func TestCompileScoreThresholdPerAspectExists(t *testing.T) {
	q := Compile(FilterSpec{
		MinScores: map[Aspect]float64{AspectSkills: 0.8, AspectProduct: 0.5},
		Page:      1,
		PageSize:  20,
	})
	sql, args, err := q.Count.ToSql()
	require.NoError(t, err)

	// One EXISTS per aspect keeps the comparison against the course-level
	// maximum: offerings scoring [0.2, 0.9] pass minSkills=0.8 exactly once.
	assert.Contains(t, sql, "co_skills.score_skills_sigmoid >= $")
	assert.Contains(t, sql, "co_product.score_product_sigmoid >= $")
	assert.Equal(t, 2, strings.Count(sql, "EXISTS"))
	assert.Equal(t, []interface{}{0.8, 0.5}, args)
}

func TestCompileScoreThresholdClamping(t *testing.T) {
	spec := FilterSpec{
		MinScores: map[Aspect]float64{
			AspectSkills:      1.7,  // clamps to 1
			AspectProduct:     -0.2, // dropped
			AspectVenture:     0,    // dropped
			AspectFoundations: 0.3,
		},
	}.Normalize()
	assert.Equal(t, map[Aspect]float64{AspectSkills: 1, AspectFoundations: 0.3}, spec.MinScores)
}

func TestCompileSortFieldMapping(t *testing.T) {
	tests := []struct {
		field SortField
		order SortOrder
		want  string
	}{
		{SortCourseName, SortAsc, "ORDER BY c.course_name ASC"},
		{SortCourseName, SortDesc, "ORDER BY c.course_name DESC"},
		{SortCredits, SortDesc, "ORDER BY c.credits DESC, c.course_name ASC"},
		{SortScoreSkills, SortDesc, "ORDER BY co.max_score_skills_sigmoid DESC NULLS LAST, c.course_name ASC"},
		{SortScoreProduct, SortAsc, "ORDER BY co.max_score_product_sigmoid ASC NULLS LAST, c.course_name ASC"},
		{SortScoreVenture, SortDesc, "ORDER BY co.max_score_venture_sigmoid DESC NULLS LAST, c.course_name ASC"},
		{SortScoreFoundations, SortDesc, "ORDER BY co.max_score_foundations_sigmoid DESC NULLS LAST, c.course_name ASC"},
		{SortWorkload, SortAsc, `ORDER BY CASE WHEN TRIM(split_part(COALESCE(c.workload, ''), 'hrs', 1)) !~ '^[0-9]+(\.[0-9]+)?$' THEN NULL WHEN c.workload LIKE '%hrs/week%' THEN TRIM(split_part(COALESCE(c.workload, ''), 'hrs', 1))::numeric WHEN c.workload LIKE '%hrs/semester%' THEN TRIM(split_part(COALESCE(c.workload, ''), 'hrs', 1))::numeric / 14 ELSE NULL END ASC NULLS LAST, c.course_name ASC`},
		{SortField("credits; DROP TABLE courses"), SortDesc, "ORDER BY c.course_name ASC"},
		{SortField(""), SortDesc, "ORDER BY c.course_name ASC"},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"/"+string(tt.order), func(t *testing.T) {
			q := Compile(FilterSpec{SortField: tt.field, SortOrder: tt.order, Page: 1, PageSize: 20})
			sql, _, err := q.Items.ToSql()
			require.NoError(t, err)
			assert.Contains(t, sql, tt.want)
		})
	}
}

func TestCompileSemesterCaseInsensitive(t *testing.T) {
	q := Compile(FilterSpec{Semester: "Winter", Page: 1, PageSize: 20})
	sql, args, err := q.Count.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "LOWER(c.semester) = LOWER($1)")
	assert.Equal(t, []interface{}{"Winter"}, args)
}

func TestCompileNoFiltersOmitsWhere(t *testing.T) {
	q := Compile(FilterSpec{Page: 1, PageSize: 20})
	itemsSQL, itemsArgs, err := q.Items.ToSql()
	require.NoError(t, err)
	countSQL, _, err := q.Count.ToSql()
	require.NoError(t, err)
	assert.NotContains(t, itemsSQL, "WHERE")
	assert.NotContains(t, countSQL, "WHERE")
	assert.Empty(t, itemsArgs)
}

func TestCacheKeyDeterministic(t *testing.T) {
	spec := FilterSpec{
		Semester: "winter",
		Tags:     map[string][]string{"keywords": {"AI"}, "available_programs": {"CS"}},
		Page:     1,
		PageSize: 20,
	}
	first, err := Compile(spec).CacheKey()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		key, err := Compile(spec).CacheKey()
		require.NoError(t, err)
		assert.Equal(t, first, key)
	}

	other := spec
	other.Page = 2
	otherKey, err := Compile(other).CacheKey()
	require.NoError(t, err)
	assert.NotEqual(t, first, otherKey)
}
