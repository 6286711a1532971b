package search

import "strings"

// SortField identifies the logical field a course search is ordered by.
type SortField string

const (
	SortRelevance        SortField = "relevance"
	SortCourseName       SortField = "course_name"
	SortCredits          SortField = "credits"
	SortWorkload         SortField = "workload"
	SortScoreSkills      SortField = "score_skills"
	SortScoreProduct     SortField = "score_product"
	SortScoreVenture     SortField = "score_venture"
	SortScoreFoundations SortField = "score_foundations"
)

// SortOrder is the sort direction. Anything other than "asc" is treated as "desc".
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Aspect names one of the four per-offering score dimensions.
type Aspect string

const (
	AspectSkills      Aspect = "skills"
	AspectProduct     Aspect = "product"
	AspectVenture     Aspect = "venture"
	AspectFoundations Aspect = "foundations"
)

// aspects is the fixed iteration order for score filters. Map iteration order
// would make the generated SQL (and therefore the cache key) non-deterministic.
var aspects = []Aspect{AspectSkills, AspectProduct, AspectVenture, AspectFoundations}

var aspectColumns = map[Aspect]string{
	AspectSkills:      "score_skills_sigmoid",
	AspectProduct:     "score_product_sigmoid",
	AspectVenture:     "score_venture_sigmoid",
	AspectFoundations: "score_foundations_sigmoid",
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// FilterSpec is the normalized representation of all user-chosen search
// constraints and sort/page directives. It is immutable per request: Normalize
// returns a cleaned copy and the compiler only ever reads it.
type FilterSpec struct {
	Query      string
	Type       string
	Section    string
	Semester   string
	CreditsMin *int
	CreditsMax *int

	// MinScores holds per-aspect minimum thresholds, clamped to (0,1].
	// A missing key imposes no constraint.
	MinScores map[Aspect]float64

	// Tags maps a tag-type name to the tag names filtered under it.
	// Semantics: AND across tag types, OR within a tag type's list.
	Tags map[string][]string

	SortField SortField
	SortOrder SortOrder
	Page      int
	PageSize  int
}

// Normalize returns a copy of the spec with every recoverable input condition
// resolved locally: trimmed query, clamped page/pageSize, score thresholds
// clamped to [0,1] with values <= 0 dropped, empty tag lists removed and the
// sort order reduced to asc/desc. Unknown sort fields are left as-is; the
// compiler degrades them to the course-name default.
func (s FilterSpec) Normalize() FilterSpec {
	out := s
	out.Query = strings.TrimSpace(s.Query)
	out.Type = strings.TrimSpace(s.Type)
	out.Section = strings.TrimSpace(s.Section)
	out.Semester = strings.TrimSpace(s.Semester)

	if out.Page < 1 {
		out.Page = 1
	}
	if out.PageSize < 1 {
		out.PageSize = 1
	} else if out.PageSize > MaxPageSize {
		out.PageSize = MaxPageSize
	}

	if strings.ToLower(string(s.SortOrder)) == string(SortAsc) {
		out.SortOrder = SortAsc
	} else {
		out.SortOrder = SortDesc
	}

	out.MinScores = make(map[Aspect]float64, len(s.MinScores))
	for _, a := range aspects {
		v, ok := s.MinScores[a]
		if !ok || v <= 0 {
			continue
		}
		if v > 1 {
			v = 1
		}
		out.MinScores[a] = v
	}

	out.Tags = make(map[string][]string, len(s.Tags))
	for tagType, names := range s.Tags {
		cleaned := make([]string, 0, len(names))
		for _, n := range names {
			n = strings.TrimSpace(n)
			if n != "" {
				cleaned = append(cleaned, n)
			}
		}
		if len(cleaned) > 0 {
			out.Tags[tagType] = cleaned
		}
	}

	return out
}

// Offset is the zero-based row offset for the item fetch.
func (s FilterSpec) Offset() uint64 {
	return uint64((s.Page - 1) * s.PageSize)
}

// SplitList splits a CSV-style parameter into trimmed, non-empty entries.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
