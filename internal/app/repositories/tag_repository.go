package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doruk/courseatlas/internal/app/models"
	"github.com/doruk/courseatlas/internal/pkg/apperrors"
	"github.com/doruk/courseatlas/internal/pkg/dberrors"
	"github.com/doruk/courseatlas/internal/pkg/logger"
)

// TagRepository reads the tag vocabulary used to populate filter options.
type TagRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListGroups returns every tag name grouped by tag type, both ordered by name.
func (r *TagRepository) ListGroups(ctx context.Context) ([]models.TagGroup, error) {
	sql, args, err := r.sb.Select("tt.name", "t.name").
		From("tags t").
		Join("tag_types tt ON tt.id = t.tag_type_id").
		OrderBy("tt.name", "t.name").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building tag groups SQL")
		return nil, fmt.Errorf("failed to build tag groups query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsSchemaMismatch(err) {
			logger.Error().Err(err).Msg("Tag schema does not match query expectations")
			return nil, apperrors.NewSchemaError("failed to list tags: schema mismatch")
		}
		logger.Error().Err(err).Msg("Error querying tag groups")
		return nil, apperrors.NewStoreError("failed to list tags")
	}
	defer rows.Close()

	var groups []models.TagGroup
	for rows.Next() {
		var tagType, name string
		if err := rows.Scan(&tagType, &name); err != nil {
			logger.Error().Err(err).Msg("Error scanning tag row")
			return nil, apperrors.NewStoreError("failed to scan tag row")
		}
		if len(groups) == 0 || groups[len(groups)-1].TagType != tagType {
			groups = append(groups, models.TagGroup{TagType: tagType})
		}
		groups[len(groups)-1].Names = append(groups[len(groups)-1].Names, name)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating tag rows")
		return nil, apperrors.NewStoreError("failed to iterate tag rows")
	}

	return groups, nil
}
