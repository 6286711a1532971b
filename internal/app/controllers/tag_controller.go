package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/doruk/courseatlas/internal/app/services"
	"github.com/doruk/courseatlas/internal/middleware"
)

// TagController handles tag vocabulary operations
type TagController struct {
	tagService services.TagService
}

// NewTagController creates a new TagController
func NewTagController(tagService services.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// ListTagOptions retrieves the tag vocabulary grouped by type
// @Summary List tag options
// @Description Retrieves every known tag name grouped by tag type, for populating filter widgets
// @Tags tags
// @Accept json
// @Produce json
// @Success 200 {object} dto.TagOptionsResponse "Tag options retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tags [get]
func (c *TagController) ListTagOptions(ctx *gin.Context) {
	resp, err := c.tagService.ListTagOptions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
