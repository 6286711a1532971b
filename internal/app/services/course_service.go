package services

import (
	"context"
	"time"

	"github.com/doruk/courseatlas/internal/app/models/dto"
	"github.com/doruk/courseatlas/internal/app/repositories"
	"github.com/doruk/courseatlas/internal/app/search"
	"github.com/doruk/courseatlas/internal/pkg/cache"
	"github.com/doruk/courseatlas/internal/pkg/logger"
)

// CourseService defines the interface for course search operations
type CourseService interface {
	SearchCourses(ctx context.Context, spec search.FilterSpec) (*dto.CourseSearchResponse, error)
	GetCourseByID(ctx context.Context, id int64) (*dto.CourseDetailResponse, error)
	RankPage(req *dto.ParetoRankRequest) *dto.ParetoRankResponse
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	cache      *cache.Cache // nil when caching is disabled
	cacheTTL   time.Duration
}

// NewCourseService creates a new course service instance. cache may be nil.
func NewCourseService(courseRepo *repositories.CourseRepository, c *cache.Cache, cacheTTL time.Duration) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

// SearchCourses compiles the filter once and serves both store round-trips
// from that single query pair. Envelopes without a free-text query at offset
// zero may be cached for a short, bounded duration; the cache key covers the
// full request shape so a hit can never mix filters.
func (s *courseServiceImpl) SearchCourses(ctx context.Context, spec search.FilterSpec) (*dto.CourseSearchResponse, error) {
	q := search.Compile(spec)

	cacheable := s.cache != nil && q.Spec.Query == "" && q.Spec.Offset() == 0
	var cacheKey string
	if cacheable {
		key, err := q.CacheKey()
		if err != nil {
			logger.Warn().Err(err).Msg("Skipping cache for unkeyable search")
			cacheable = false
		} else {
			cacheKey = "courses:search:" + key
			var cached dto.CourseSearchResponse
			hit, err := s.cache.GetJSON(ctx, cacheKey, &cached)
			if err != nil {
				logger.Warn().Err(err).Msg("Course search cache read failed")
			} else if hit {
				return &cached, nil
			}
		}
	}

	rows, total, err := s.courseRepo.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CourseItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.NewCourseItem(row))
	}

	resp := &dto.CourseSearchResponse{
		Items:    items,
		Total:    total,
		Page:     q.Spec.Page,
		PageSize: q.Spec.PageSize,
	}

	if cacheable {
		if err := s.cache.SetJSON(ctx, cacheKey, resp, s.cacheTTL); err != nil {
			logger.Warn().Err(err).Msg("Course search cache write failed")
		}
	}

	return resp, nil
}

// GetCourseByID returns a single course with offerings and tags.
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*dto.CourseDetailResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CourseDetailResponse{Course: *course}, nil
}

// RankPage computes the dominance-front ranking of an already-fetched page.
// Pure computation over request data; it never touches the store and cannot
// change any search total.
func (s *courseServiceImpl) RankPage(req *dto.ParetoRankRequest) *dto.ParetoRankResponse {
	pref := search.ParetoPreference{
		Credits:  search.Objective(req.Preference.Credits),
		Workload: search.Objective(req.Preference.Workload),
	}

	points := make([]search.ParetoPoint, len(req.Items))
	for i, item := range req.Items {
		points[i] = search.NewParetoPoint(item.Credits, item.Workload)
	}

	ranks := search.ParetoRanks(points, pref)
	order := search.OrderByRank(points, ranks, pref)

	items := make([]dto.ParetoRankedItem, 0, len(order))
	for _, idx := range order {
		items = append(items, dto.ParetoRankedItem{
			ID:   req.Items[idx].ID,
			Rank: ranks[idx],
		})
	}
	return &dto.ParetoRankResponse{Items: items}
}
