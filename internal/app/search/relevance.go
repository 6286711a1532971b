package search

import "github.com/Masterminds/squirrel"

// hasProfessorExpr is true when a course has at least one offering with a
// non-empty professor name.
const hasProfessorExpr = `EXISTS (SELECT 1 FROM course_offerings co_p` +
	` WHERE co_p.course_id = c.id AND co_p.prof_name IS NOT NULL AND co_p.prof_name <> '')`

// textFilter is the free-text query in its filter role: an OR across course
// name, code, exam form, workload text and professor names. It applies
// whenever a query is present, independent of the active sort.
func textFilter(query string) squirrel.Sqlizer {
	like := "%" + query + "%"
	return squirrel.Expr(
		`(c.course_name ILIKE ?`+
			` OR c.course_code ILIKE ?`+
			` OR COALESCE(c.exam_form, '') ILIKE ?`+
			` OR COALESCE(c.workload, '') ILIKE ?`+
			` OR EXISTS (SELECT 1 FROM course_offerings co_q WHERE co_q.course_id = c.id AND co_q.prof_name ILIKE ?))`,
		like, like, like, like, like,
	)
}

// relevanceExpr is the free-text query in its sort role: a weighted sum of
// case-insensitive substring-match indicators. Name and code hits weigh 5,
// the exam form 2, the workload text 1, and the presence of any professor 3.
// Columns are COALESCEd so a NULL column scores 0 instead of voiding the sum.
// Only meaningful when the query is non-empty; the compiler falls back to the
// course-name sort otherwise.
func relevanceExpr(query string) (string, []interface{}) {
	like := "%" + query + "%"
	expr := `((c.course_name ILIKE ?)::int * 5` +
		` + (c.course_code ILIKE ?)::int * 5` +
		` + (COALESCE(c.exam_form, '') ILIKE ?)::int * 2` +
		` + (COALESCE(c.workload, '') ILIKE ?)::int * 1` +
		` + (` + hasProfessorExpr + `)::int * 3)`
	return expr, []interface{}{like, like, like, like}
}
