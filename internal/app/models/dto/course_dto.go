package dto

import (
	"github.com/doruk/courseatlas/internal/app/models"
	"github.com/doruk/courseatlas/internal/app/search"
)

// CourseSearchRequest carries every query parameter of GET /courses.
// Parameter names are part of the public contract and must survive transport
// changes, so they mirror the upstream catalog API exactly.
type CourseSearchRequest struct {
	Query    string `form:"q"`
	Type     string `form:"type" binding:"omitempty,oneof=mandatory optional"`
	Section  string `form:"section"`
	Semester string `form:"semester"`

	CreditsMin *int `form:"creditsMin" binding:"omitempty,min=0"`
	CreditsMax *int `form:"creditsMax" binding:"omitempty,min=0"`

	Keywords          string `form:"keywords"`
	AvailablePrograms string `form:"available_programs"`
	AvailableLevels   string `form:"available_levels"`

	MinSkills      *float64 `form:"minSkills"`
	MinProduct     *float64 `form:"minProduct"`
	MinVenture     *float64 `form:"minVenture"`
	MinFoundations *float64 `form:"minFoundations"`

	SortField string `form:"sortField,default=relevance"`
	SortOrder string `form:"sortOrder,default=desc"`
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"pageSize,default=20"`
}

// ToFilterSpec converts the bound request into the search core's FilterSpec.
// Out-of-range values are not rejected here; FilterSpec normalizes them.
func (r *CourseSearchRequest) ToFilterSpec() search.FilterSpec {
	spec := search.FilterSpec{
		Query:      r.Query,
		Type:       r.Type,
		Section:    r.Section,
		Semester:   r.Semester,
		CreditsMin: r.CreditsMin,
		CreditsMax: r.CreditsMax,
		MinScores:  map[search.Aspect]float64{},
		Tags:       map[string][]string{},
		SortField:  search.SortField(r.SortField),
		SortOrder:  search.SortOrder(r.SortOrder),
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
	if r.MinSkills != nil {
		spec.MinScores[search.AspectSkills] = *r.MinSkills
	}
	if r.MinProduct != nil {
		spec.MinScores[search.AspectProduct] = *r.MinProduct
	}
	if r.MinVenture != nil {
		spec.MinScores[search.AspectVenture] = *r.MinVenture
	}
	if r.MinFoundations != nil {
		spec.MinScores[search.AspectFoundations] = *r.MinFoundations
	}
	if names := search.SplitList(r.Keywords); names != nil {
		spec.Tags["keywords"] = names
	}
	if names := search.SplitList(r.AvailablePrograms); names != nil {
		spec.Tags["available_programs"] = names
	}
	if names := search.SplitList(r.AvailableLevels); names != nil {
		spec.Tags["available_levels"] = names
	}
	return spec
}

// CourseItem is one row of the search result. JSON keys follow the upstream
// catalog response format, including the *_sigmoid score column names.
type CourseItem struct {
	ID         int64   `json:"id" example:"42"`
	CourseName string  `json:"course_name" example:"Machine Learning"`
	CourseCode string  `json:"course_code" example:"CS-433"`
	URL        *string `json:"url"`
	Credits    int     `json:"credits" example:"6"`
	Lang       *string `json:"lang" example:"english"`
	Semester   *string `json:"semester" example:"winter"`
	ExamForm   *string `json:"exam_form" example:"written"`
	Workload   *string `json:"workload" example:"4 hrs/week"`

	ProfName      *string `json:"prof_name"`
	Type          *string `json:"type"`
	ProfNames     *string `json:"prof_names"`
	OfferingTypes *string `json:"offering_types"`

	MaxScoreSkills      *float64 `json:"max_score_skills_sigmoid"`
	MaxScoreProduct     *float64 `json:"max_score_product_sigmoid"`
	MaxScoreVenture     *float64 `json:"max_score_venture_sigmoid"`
	MaxScoreFoundations *float64 `json:"max_score_foundations_sigmoid"`
}

// CourseSearchResponse is the paginated result envelope. `total` is the exact
// count of distinct matching courses under the same predicate as `items`, so
// ceil(total/pageSize) is the authoritative page count.
type CourseSearchResponse struct {
	Items    []CourseItem `json:"items"`
	Total    int64        `json:"total" example:"137"`
	Page     int          `json:"page" example:"1"`
	PageSize int          `json:"pageSize" example:"20"`
}

// CourseDetailResponse is the single-course view with full offerings.
type CourseDetailResponse struct {
	Course models.Course `json:"course"`
}

// TagOptionsResponse lists known tag names per tag type for filter widgets.
type TagOptionsResponse struct {
	TagTypes []models.TagGroup `json:"tag_types"`
}

// NewCourseItem maps a repository summary row into the response shape.
func NewCourseItem(row models.CourseSummary) CourseItem {
	return CourseItem{
		ID:                  row.ID,
		CourseName:          row.Name,
		CourseCode:          row.Code,
		URL:                 row.URL,
		Credits:             row.Credits,
		Lang:                row.Lang,
		Semester:            row.Semester,
		ExamForm:            row.ExamForm,
		Workload:            row.Workload,
		ProfName:            row.PrimaryProfName,
		Type:                row.PrimaryType,
		ProfNames:           row.ProfNames,
		OfferingTypes:       row.OfferingTypes,
		MaxScoreSkills:      row.MaxScoreSkills,
		MaxScoreProduct:     row.MaxScoreProduct,
		MaxScoreVenture:     row.MaxScoreVenture,
		MaxScoreFoundations: row.MaxScoreFoundations,
	}
}
