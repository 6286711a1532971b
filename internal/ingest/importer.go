package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/doruk/courseatlas/internal/db"
	"github.com/doruk/courseatlas/internal/pkg/logger"
)

// Importer loads parsed catalog records into the store. Courses are keyed by
// course code, so re-running an import refreshes descriptive fields instead
// of duplicating rows.
type Importer struct {
	db *db.PostgresDB
}

// NewImporter creates a new importer
func NewImporter(database *db.PostgresDB) *Importer {
	return &Importer{db: database}
}

// Stats summarizes one import run.
type Stats struct {
	Imported int
	Failed   int
}

// Import writes records one per transaction, so a bad row never takes down
// the rest of the file. Returns per-run counts; row failures are logged.
func (imp *Importer) Import(ctx context.Context, records []CourseRecord) Stats {
	var stats Stats
	for i, rec := range records {
		err := imp.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			return imp.importRecord(ctx, tx, rec)
		})
		if err != nil {
			stats.Failed++
			logger.Error().Err(err).Int("row", i+1).Str("courseCode", rec.Code).Msg("Row import failed")
			continue
		}
		stats.Imported++
		if stats.Imported%100 == 0 {
			logger.Info().Int("imported", stats.Imported).Int("total", len(records)).Msg("Import progress")
		}
	}
	return stats
}

func (imp *Importer) importRecord(ctx context.Context, tx pgx.Tx, rec CourseRecord) error {
	courseID, err := upsertCourse(ctx, tx, rec)
	if err != nil {
		return err
	}

	// Offerings only exist for rows that name a section
	if rec.Section != "" {
		if err := upsertOffering(ctx, tx, courseID, rec); err != nil {
			return err
		}
	}

	for typeName, tags := range rec.Tags {
		typeID, err := upsertTagType(ctx, tx, typeName)
		if err != nil {
			return err
		}
		for _, tagName := range tags {
			tagName = strings.TrimSpace(tagName)
			if tagName == "" {
				continue
			}
			tagID, err := upsertTag(ctx, tx, typeID, tagName)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO course_tags (course_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				courseID, tagID); err != nil {
				return fmt.Errorf("failed to link tag %q: %w", tagName, err)
			}
		}
	}

	return nil
}

func upsertCourse(ctx context.Context, tx pgx.Tx, rec CourseRecord) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO courses (course_name, course_code, course_url, credits, lang, semester, exam_form, workload)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
		ON CONFLICT (course_code) DO UPDATE SET
			course_name = EXCLUDED.course_name,
			course_url  = EXCLUDED.course_url,
			credits     = EXCLUDED.credits,
			lang        = EXCLUDED.lang,
			semester    = EXCLUDED.semester,
			exam_form   = EXCLUDED.exam_form,
			workload    = EXCLUDED.workload
		RETURNING id`,
		rec.Name, rec.Code, rec.URL, rec.Credits, rec.Lang, rec.Semester, rec.ExamForm, rec.Workload,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert course %q: %w", rec.Code, err)
	}
	return id, nil
}

func upsertOffering(ctx context.Context, tx pgx.Tx, courseID int64, rec CourseRecord) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO course_offerings (course_id, section, type, prof_name)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT (course_id, section) DO UPDATE SET
			type      = EXCLUDED.type,
			prof_name = EXCLUDED.prof_name`,
		courseID, rec.Section, rec.Type, rec.ProfName)
	if err != nil {
		return fmt.Errorf("failed to upsert offering %q: %w", rec.Section, err)
	}
	return nil
}

func upsertTagType(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO tag_types (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert tag type %q: %w", name, err)
	}
	return id, nil
}

func upsertTag(ctx context.Context, tx pgx.Tx, typeID int64, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO tags (tag_type_id, name) VALUES ($1, $2)
		ON CONFLICT (tag_type_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		typeID, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert tag %q: %w", name, err)
	}
	return id, nil
}
