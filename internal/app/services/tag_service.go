package services

import (
	"context"

	"github.com/doruk/courseatlas/internal/app/models/dto"
	"github.com/doruk/courseatlas/internal/app/repositories"
)

// TagService defines the interface for tag vocabulary operations
type TagService interface {
	ListTagOptions(ctx context.Context) (*dto.TagOptionsResponse, error)
}

// tagServiceImpl implements the TagService interface
type tagServiceImpl struct {
	tagRepo *repositories.TagRepository
}

// NewTagService creates a new tag service instance
func NewTagService(tagRepo *repositories.TagRepository) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

// ListTagOptions returns every known tag name grouped by tag type, for
// populating filter widgets.
func (s *tagServiceImpl) ListTagOptions(ctx context.Context) (*dto.TagOptionsResponse, error) {
	groups, err := s.tagRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TagOptionsResponse{TagTypes: groups}, nil
}
