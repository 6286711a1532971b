package models

// Offering type values. A NULL type means the source data did not state one.
const (
	OfferingMandatory = "mandatory"
	OfferingOptional  = "optional"
)

// CourseOffering represents one section-level offering of a course, carrying
// the professor and the four aspect scores normalized to [0,1].
type CourseOffering struct {
	ID       int64   `json:"id" db:"id"`
	CourseID int64   `json:"course_id" db:"course_id"`
	Section  *string `json:"section,omitempty" db:"section"`
	Type     *string `json:"type,omitempty" db:"type"`
	ProfName *string `json:"prof_name,omitempty" db:"prof_name"`

	ScoreSkills      *float64 `json:"score_skills_sigmoid,omitempty" db:"score_skills_sigmoid"`
	ScoreProduct     *float64 `json:"score_product_sigmoid,omitempty" db:"score_product_sigmoid"`
	ScoreVenture     *float64 `json:"score_venture_sigmoid,omitempty" db:"score_venture_sigmoid"`
	ScoreFoundations *float64 `json:"score_foundations_sigmoid,omitempty" db:"score_foundations_sigmoid"`
}
