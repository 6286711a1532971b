package search

import (
	"regexp"
	"strconv"
	"strings"
)

// weeksPerSemester converts "hrs/semester" totals to a weekly-hour equivalent.
const weeksPerSemester = 14

var workloadNumberPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// WeeklyHours normalizes a free-text workload field ("4 hrs/week",
// "56 hrs/semester") to weekly hours. The second return value is false when
// the field cannot be parsed; such courses sort after every numeric value.
// The raw text is always preserved for display, this value only drives the
// workload sort and the Pareto axis.
func WeeklyHours(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	idx := strings.Index(s, "hrs")
	if idx < 0 {
		return 0, false
	}
	prefix := strings.TrimSpace(s[:idx])
	if !workloadNumberPattern.MatchString(prefix) {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	switch {
	case strings.Contains(s, "hrs/week"):
		return v, true
	case strings.Contains(s, "hrs/semester"):
		return v / weeksPerSemester, true
	}
	return 0, false
}

// workloadPrefixExpr extracts the numeric candidate before the "hrs" marker.
const workloadPrefixExpr = `TRIM(split_part(COALESCE(c.workload, ''), 'hrs', 1))`

// workloadWeeklyExpr is the SQL counterpart of WeeklyHours. NULL means
// unparseable and is ordered NULLS LAST for either direction.
// The regex quantifier is written ?? because the statement builder treats a
// bare ? as a positional placeholder even inside quoted literals; ?? renders
// as a literal ? in the final SQL.
const workloadWeeklyExpr = `CASE` +
	` WHEN ` + workloadPrefixExpr + ` !~ '^[0-9]+(\.[0-9]+)??$' THEN NULL` +
	` WHEN c.workload LIKE '%hrs/week%' THEN ` + workloadPrefixExpr + `::numeric` +
	` WHEN c.workload LIKE '%hrs/semester%' THEN ` + workloadPrefixExpr + `::numeric / 14` +
	` ELSE NULL END`
