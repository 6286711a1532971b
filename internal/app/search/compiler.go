package search

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// itemColumns is the per-course projection: one row per course with its
// offering fields pre-aggregated by the offeringAggJoin subquery.
var itemColumns = []string{
	"c.id",
	"c.course_name",
	"c.course_code",
	"c.course_url",
	"c.credits",
	"c.lang",
	"c.semester",
	"c.exam_form",
	"c.workload",
	"co.primary_prof_name",
	"co.primary_type",
	"co.prof_names",
	"co.offering_types",
	"co.max_score_skills_sigmoid",
	"co.max_score_product_sigmoid",
	"co.max_score_venture_sigmoid",
	"co.max_score_foundations_sigmoid",
}

// offeringAggJoin collapses course_offerings to one row per course: primary
// professor and type are the lexicographically first, name/type lists are
// distinct concatenations, scores are the per-aspect course-level maximum.
const offeringAggJoin = `LEFT JOIN (` +
	`SELECT co.course_id,` +
	` MIN(co.prof_name) AS primary_prof_name,` +
	` MIN(co.type) AS primary_type,` +
	` STRING_AGG(DISTINCT co.prof_name, ', ' ORDER BY co.prof_name) AS prof_names,` +
	` STRING_AGG(DISTINCT co.type, ', ' ORDER BY co.type) AS offering_types,` +
	` MAX(co.score_skills_sigmoid) AS max_score_skills_sigmoid,` +
	` MAX(co.score_product_sigmoid) AS max_score_product_sigmoid,` +
	` MAX(co.score_venture_sigmoid) AS max_score_venture_sigmoid,` +
	` MAX(co.score_foundations_sigmoid) AS max_score_foundations_sigmoid` +
	` FROM course_offerings co GROUP BY co.course_id` +
	`) co ON co.course_id = c.id`

// Query is a compiled FilterSpec: one paginated item fetch and one exact
// count over the identical predicate. Both builders share the same predicate
// value, so the total can never diverge from the page contents.
type Query struct {
	Spec  FilterSpec
	Items squirrel.SelectBuilder
	Count squirrel.SelectBuilder
}

// Compile translates a FilterSpec into the item and count query pair.
// The spec is normalized first, so callers may pass raw request values.
func Compile(spec FilterSpec) *Query {
	spec = spec.Normalize()

	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	pred := predicate(spec)

	items := sb.Select(itemColumns...).
		From("courses c").
		JoinClause(offeringAggJoin)
	count := sb.Select("COUNT(*)").
		From("courses c")

	if len(pred) > 0 {
		items = items.Where(pred)
		count = count.Where(pred)
	}

	orderExpr, orderArgs := orderBy(spec)
	items = items.
		OrderByClause(squirrel.Expr(orderExpr, orderArgs...)).
		Limit(uint64(spec.PageSize)).
		Offset(spec.Offset())

	return &Query{Spec: spec, Items: items, Count: count}
}

// predicate combines every active filter conjunctively. All conditions are
// either course-level comparisons or EXISTS/semi-join subqueries, so the
// predicate never multiplies course rows and is equally valid for the item
// fetch and the unpaginated count.
func predicate(spec FilterSpec) squirrel.And {
	pred := squirrel.And{}

	if spec.Query != "" {
		pred = append(pred, textFilter(spec.Query))
	}
	if spec.Semester != "" {
		pred = append(pred, squirrel.Expr("LOWER(c.semester) = LOWER(?)", spec.Semester))
	}
	if spec.CreditsMin != nil {
		pred = append(pred, squirrel.GtOrEq{"c.credits": *spec.CreditsMin})
	}
	if spec.CreditsMax != nil {
		pred = append(pred, squirrel.LtOrEq{"c.credits": *spec.CreditsMax})
	}
	if spec.Type != "" {
		pred = append(pred, squirrel.Expr(
			"EXISTS (SELECT 1 FROM course_offerings co_t WHERE co_t.course_id = c.id AND co_t.type = ?)",
			spec.Type))
	}
	if spec.Section != "" {
		pred = append(pred, squirrel.Expr(
			"EXISTS (SELECT 1 FROM course_offerings co_s WHERE co_s.course_id = c.id AND co_s.section = ?)",
			spec.Section))
	}

	// One EXISTS per aspect: the threshold holds when any offering reaches
	// it, which is exactly a comparison against the course-level maximum.
	// A single combined EXISTS would instead demand one offering to clear
	// every threshold at once.
	for _, aspect := range aspects {
		min, ok := spec.MinScores[aspect]
		if !ok {
			continue
		}
		pred = append(pred, squirrel.Expr(
			fmt.Sprintf("EXISTS (SELECT 1 FROM course_offerings co_%s WHERE co_%s.course_id = c.id AND co_%s.%s >= ?)",
				aspect, aspect, aspect, aspectColumns[aspect]),
			min))
	}

	if tagPred, ok := tagPredicate(spec.Tags); ok {
		pred = append(pred, tagPred)
	}

	return pred
}

// orderBy maps the logical sort field to a concrete ordering. Numeric and
// score fields order NULLS LAST in both directions so courses lacking data
// never interleave with ranked ones. Unknown fields, and relevance without a
// query, degrade to the ascending course-name default.
func orderBy(spec FilterSpec) (string, []interface{}) {
	dir := "DESC"
	if spec.SortOrder == SortAsc {
		dir = "ASC"
	}

	switch spec.SortField {
	case SortRelevance:
		if spec.Query == "" {
			break
		}
		expr, args := relevanceExpr(spec.Query)
		return expr + " " + dir + ", c.course_name ASC", args
	case SortCourseName:
		return "c.course_name " + dir, nil
	case SortCredits:
		return "c.credits " + dir + ", c.course_name ASC", nil
	case SortWorkload:
		return workloadWeeklyExpr + " " + dir + " NULLS LAST, c.course_name ASC", nil
	case SortScoreSkills, SortScoreProduct, SortScoreVenture, SortScoreFoundations:
		column := "co.max_" + aspectColumns[Aspect(spec.SortField[len("score_"):])]
		return column + " " + dir + " NULLS LAST, c.course_name ASC", nil
	}

	return "c.course_name ASC", nil
}

// CacheKey derives a deterministic key from the rendered item query, which
// covers the full request shape: predicate, sort, page and page size.
func (q *Query) CacheKey() (string, error) {
	sql, args, err := q.Items.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to render query for cache key: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(sql))
	fmt.Fprintf(h, "|%v", args)
	return hex.EncodeToString(h.Sum(nil)), nil
}
