package models

// Course represents a catalog entry. Nullable text columns map to pointers.
type Course struct {
	ID       int64   `json:"id" db:"id"`
	Code     string  `json:"course_code" db:"course_code"`
	Name     string  `json:"course_name" db:"course_name"`
	URL      *string `json:"url,omitempty" db:"course_url"`
	Credits  int     `json:"credits" db:"credits"`
	Lang     *string `json:"lang,omitempty" db:"lang"`
	Semester *string `json:"semester,omitempty" db:"semester"`
	ExamForm *string `json:"exam_form,omitempty" db:"exam_form"`
	Workload *string `json:"workload,omitempty" db:"workload"`

	// Relations (populated when needed)
	Offerings []CourseOffering `json:"offerings,omitempty"`
	Tags      []CourseTags     `json:"tags,omitempty"`
}

// CourseSummary is the search projection: one row per course with its
// offering fields pre-aggregated (primary professor/type are the
// lexicographically first ones, scores the per-aspect maximum).
type CourseSummary struct {
	ID       int64
	Name     string
	Code     string
	URL      *string
	Credits  int
	Lang     *string
	Semester *string
	ExamForm *string
	Workload *string

	PrimaryProfName *string
	PrimaryType     *string
	ProfNames       *string
	OfferingTypes   *string

	MaxScoreSkills      *float64
	MaxScoreProduct     *float64
	MaxScoreVenture     *float64
	MaxScoreFoundations *float64
}

// CourseTags groups a course's tag names under one tag type.
type CourseTags struct {
	TagType string   `json:"tag_type"`
	Names   []string `json:"names"`
}
