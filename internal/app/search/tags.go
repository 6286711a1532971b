package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
)

// tagPredicate builds the membership condition for tag-type filters against
// the tag_types/tags/course_tags schema.
//
// A naive join against the tag relation duplicates course rows and a plain
// existence check would accept a course that satisfies only one of the
// required tag types. The predicate therefore groups matching tag rows per
// course inside a semi-join and requires every tag type to have contributed
// at least one row (COUNT FILTER per type), which keeps the outer query free
// of duplicate rows. Tag names match exactly and case-sensitively.
//
// Returns false when no tag type carries a non-empty list.
func tagPredicate(filters map[string][]string) (squirrel.Sqlizer, bool) {
	tagTypes := make([]string, 0, len(filters))
	for tagType, names := range filters {
		if len(names) > 0 {
			tagTypes = append(tagTypes, tagType)
		}
	}
	if len(tagTypes) == 0 {
		return nil, false
	}
	// Fixed order keeps the generated SQL and cache key deterministic.
	sort.Strings(tagTypes)

	var (
		orBlocks []string
		coverage []string
		args     []interface{}
	)
	for _, tagType := range tagTypes {
		names := filters[tagType]
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(names)), ",")
		orBlocks = append(orBlocks, fmt.Sprintf("(tt.name = ? AND t.name IN (%s))", placeholders))
		args = append(args, tagType)
		for _, n := range names {
			args = append(args, n)
		}
	}
	for _, tagType := range tagTypes {
		coverage = append(coverage, "COUNT(*) FILTER (WHERE tt.name = ?) > 0")
		args = append(args, tagType)
	}

	sql := `c.id IN (` +
		`SELECT ct.course_id FROM course_tags ct` +
		` JOIN tags t ON t.id = ct.tag_id` +
		` JOIN tag_types tt ON tt.id = t.tag_type_id` +
		` WHERE ` + strings.Join(orBlocks, " OR ") +
		` GROUP BY ct.course_id` +
		` HAVING ` + strings.Join(coverage, " AND ") +
		`)`

	return squirrel.Expr(sql, args...), true
}
