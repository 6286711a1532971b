package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doruk/courseatlas/internal/app/models"
	"github.com/doruk/courseatlas/internal/app/search"
	"github.com/doruk/courseatlas/internal/pkg/apperrors"
	"github.com/doruk/courseatlas/internal/pkg/dberrors"
	"github.com/doruk/courseatlas/internal/pkg/logger"
)

// CourseRepository executes compiled search queries and single-course reads
// against the catalog schema.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Search runs the compiled query pair: the exact count first (same predicate,
// no limit/offset/order), then the page fetch. Either failure surfaces as one
// store-level error; no partial result is ever returned.
func (r *CourseRepository) Search(ctx context.Context, q *search.Query) ([]models.CourseSummary, int64, error) {
	countSQL, countArgs, err := q.Count.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course count SQL")
		return nil, 0, fmt.Errorf("failed to build course count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, r.classify(err, "count courses")
	}

	if total == 0 {
		return []models.CourseSummary{}, 0, nil
	}

	itemsSQL, itemsArgs, err := q.Items.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course search SQL")
		return nil, 0, fmt.Errorf("failed to build course search query: %w", err)
	}

	rows, err := r.db.Query(ctx, itemsSQL, itemsArgs...)
	if err != nil {
		return nil, 0, r.classify(err, "query courses")
	}
	defer rows.Close()

	var items []models.CourseSummary
	for rows.Next() {
		var item models.CourseSummary
		err := rows.Scan(
			&item.ID, &item.Name, &item.Code, &item.URL, &item.Credits,
			&item.Lang, &item.Semester, &item.ExamForm, &item.Workload,
			&item.PrimaryProfName, &item.PrimaryType, &item.ProfNames, &item.OfferingTypes,
			&item.MaxScoreSkills, &item.MaxScoreProduct, &item.MaxScoreVenture, &item.MaxScoreFoundations,
		)
		if err != nil {
			return nil, 0, r.classify(err, "scan course row")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.classify(err, "iterate course rows")
	}

	logger.Info().
		Int("page", q.Spec.Page).
		Int("pageSize", q.Spec.PageSize).
		Int64("total", total).
		Int("returnedItems", len(items)).
		Msg("Course search executed")
	return items, total, nil
}

// GetByID retrieves a course with its offerings and tags.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	courseSQL, args, err := r.sb.Select(
		"c.id", "c.course_code", "c.course_name", "c.course_url", "c.credits",
		"c.lang", "c.semester", "c.exam_form", "c.workload",
	).
		From("courses c").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	var course models.Course
	err = r.db.QueryRow(ctx, courseSQL, args...).Scan(
		&course.ID, &course.Code, &course.Name, &course.URL, &course.Credits,
		&course.Lang, &course.Semester, &course.ExamForm, &course.Workload,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Int64("courseID", id).Msg("Course not found by ID")
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, r.classify(err, fmt.Sprintf("query course ID=%d", id))
	}

	if course.Offerings, err = r.offeringsByCourse(ctx, id); err != nil {
		return nil, err
	}
	if course.Tags, err = r.tagsByCourse(ctx, id); err != nil {
		return nil, err
	}

	return &course, nil
}

func (r *CourseRepository) offeringsByCourse(ctx context.Context, courseID int64) ([]models.CourseOffering, error) {
	offeringSQL, args, err := r.sb.Select(
		"o.id", "o.course_id", "o.section", "o.type", "o.prof_name",
		"o.score_skills_sigmoid", "o.score_product_sigmoid",
		"o.score_venture_sigmoid", "o.score_foundations_sigmoid",
	).
		From("course_offerings o").
		Where(squirrel.Eq{"o.course_id": courseID}).
		OrderBy("o.section NULLS LAST", "o.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build offerings query: %w", err)
	}

	rows, err := r.db.Query(ctx, offeringSQL, args...)
	if err != nil {
		return nil, r.classify(err, "query course offerings")
	}
	defer rows.Close()

	var offerings []models.CourseOffering
	for rows.Next() {
		var o models.CourseOffering
		err := rows.Scan(
			&o.ID, &o.CourseID, &o.Section, &o.Type, &o.ProfName,
			&o.ScoreSkills, &o.ScoreProduct, &o.ScoreVenture, &o.ScoreFoundations,
		)
		if err != nil {
			return nil, r.classify(err, "scan offering row")
		}
		offerings = append(offerings, o)
	}
	if err := rows.Err(); err != nil {
		return nil, r.classify(err, "iterate offering rows")
	}
	return offerings, nil
}

func (r *CourseRepository) tagsByCourse(ctx context.Context, courseID int64) ([]models.CourseTags, error) {
	tagSQL, args, err := r.sb.Select("tt.name", "t.name").
		From("course_tags ct").
		Join("tags t ON t.id = ct.tag_id").
		Join("tag_types tt ON tt.id = t.tag_type_id").
		Where(squirrel.Eq{"ct.course_id": courseID}).
		OrderBy("tt.name", "t.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course tags query: %w", err)
	}

	rows, err := r.db.Query(ctx, tagSQL, args...)
	if err != nil {
		return nil, r.classify(err, "query course tags")
	}
	defer rows.Close()

	var groups []models.CourseTags
	for rows.Next() {
		var tagType, name string
		if err := rows.Scan(&tagType, &name); err != nil {
			return nil, r.classify(err, "scan course tag row")
		}
		if len(groups) == 0 || groups[len(groups)-1].TagType != tagType {
			groups = append(groups, models.CourseTags{TagType: tagType})
		}
		groups[len(groups)-1].Names = append(groups[len(groups)-1].Names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, r.classify(err, "iterate course tag rows")
	}
	return groups, nil
}

// classify maps a pgx error to the application error taxonomy: schema-level
// failures are distinguished from plain store unavailability so they are
// never misreported as "no matches".
func (r *CourseRepository) classify(err error, op string) error {
	if dberrors.IsSchemaMismatch(err) {
		logger.Error().Err(err).Str("op", op).Msg("Catalog schema does not match query expectations")
		return apperrors.NewSchemaError(fmt.Sprintf("failed to %s: schema mismatch", op))
	}
	logger.Error().Err(err).Str("op", op).Msg("Course store operation failed")
	return apperrors.NewStoreError(fmt.Sprintf("failed to %s", op))
}
