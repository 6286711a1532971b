package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/doruk/courseatlas/internal/app/models/dto"
	"github.com/doruk/courseatlas/internal/app/services"
	"github.com/doruk/courseatlas/internal/middleware"
)

// CourseController handles course search and retrieval operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// SearchCourses handles the filtered, ranked course listing
// @Summary Search courses
// @Description Returns a paginated page of courses matching the given filters, plus the exact total under the same predicate
// @Tags courses
// @Accept json
// @Produce json
// @Param q query string false "Free-text relevance query over name, code, exam form, workload and professors"
// @Param type query string false "Offering type" Enums(mandatory, optional)
// @Param section query string false "Offering section"
// @Param semester query string false "Semester (case-insensitive exact match)"
// @Param creditsMin query int false "Minimum credits (inclusive)" minimum(0)
// @Param creditsMax query int false "Maximum credits (inclusive)" minimum(0)
// @Param keywords query string false "Comma-separated keyword tags (OR within, AND against other tag types)"
// @Param available_programs query string false "Comma-separated program tags"
// @Param available_levels query string false "Comma-separated level tags"
// @Param minSkills query number false "Minimum skills score threshold, clamped to [0,1]"
// @Param minProduct query number false "Minimum product score threshold, clamped to [0,1]"
// @Param minVenture query number false "Minimum venture score threshold, clamped to [0,1]"
// @Param minFoundations query number false "Minimum foundations score threshold, clamped to [0,1]"
// @Param sortField query string false "Sort field" Enums(relevance, course_name, credits, workload, score_skills, score_product, score_venture, score_foundations) default(relevance)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(desc)
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.CourseSearchResponse "Matching courses with exact total"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /courses [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	var req dto.CourseSearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid search parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.courseService.SearchCourses(ctx, req.ToFilterSpec())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetCourseByID retrieves a single course with offerings and tags
// @Summary Get course details
// @Description Retrieves one course with all of its offerings and tags
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.CourseDetailResponse "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RankCoursePage ranks an already-fetched page by credits/workload dominance
// @Summary Rank a result page
// @Description Assigns each submitted course a dominance-front rank over the credits and workload axes and returns the items in presentation order. Presentation-only; does not affect search results or totals.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.ParetoRankRequest true "Page items and per-axis preference"
// @Success 200 {object} dto.ParetoRankResponse "Ranked items in presentation order"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /courses/pareto [post]
func (c *CourseController) RankCoursePage(ctx *gin.Context) {
	var req dto.ParetoRankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ranking request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, c.courseService.RankPage(&req))
}
