package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// tagTypeColumns are the CSV columns whose cell values become tags under a
// tag type of the same name. Every other column is a plain course field.
var tagTypeColumns = []string{"keywords", "available_programs", "available_levels"}

// CourseRecord is one parsed CSV row.
type CourseRecord struct {
	Code     string
	Name     string
	URL      string
	ProfName string
	Credits  int
	Semester string
	ExamForm string
	Workload string
	Type     string
	Lang     string
	Section  string
	Tags     map[string][]string
}

// SplitTagCell turns one cell value into tag names. Array-like cells such as
// ['a','b'] or ["a","b"] are expanded; anything else is a single tag.
func SplitTagCell(cell string) []string {
	cleaned := strings.TrimSpace(cell)
	if cleaned == "" {
		return nil
	}

	if strings.HasPrefix(cleaned, "[") && strings.HasSuffix(cleaned, "]") {
		jsonish := strings.ReplaceAll(cleaned, "'", `"`)
		var arr []interface{}
		if err := json.Unmarshal([]byte(jsonish), &arr); err == nil {
			var tags []string
			for _, v := range arr {
				if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
					tags = append(tags, s)
				}
			}
			return tags
		}
		// Unparseable array-like cells fall through as a single value
	}

	return []string{cleaned}
}

// NormalizeOfferingType coerces catalog type variants onto the two canonical
// values. Unrecognized input maps to the empty string.
func NormalizeOfferingType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case t == "mandatory" || t == "optional":
		return t
	case strings.Contains(t, "compulsory") || strings.Contains(t, "required") || strings.Contains(t, "core"):
		return "mandatory"
	case strings.Contains(t, "elective") || strings.Contains(t, "optional"):
		return "optional"
	}
	return ""
}

var levelNumberRe = regexp.MustCompile(`(\d+)`)

// InferSemesterFromLevel maps a study-level label onto a teaching semester.
// Spring levels run in summer, autumn levels in winter; bare level numbers
// alternate, odd levels starting in winter.
func InferSemesterFromLevel(level string) string {
	label := strings.TrimSpace(level)
	if label == "" {
		return ""
	}
	lower := strings.ToLower(label)
	if strings.Contains(lower, "spring") {
		return "summer"
	}
	if strings.Contains(lower, "autumn") || strings.Contains(lower, "fall") {
		return "winter"
	}
	if m := levelNumberRe.FindString(label); m != "" {
		num, err := strconv.Atoi(m)
		if err == nil {
			if num%2 == 0 {
				return "summer"
			}
			return "winter"
		}
	}
	return ""
}

// ParseRecords reads a catalog CSV with a header row into course records.
// Rows without a course name are dropped.
func ParseRecords(r io.Reader) ([]CourseRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []CourseRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		rec := CourseRecord{
			Code:     field(row, "course_code"),
			Name:     field(row, "course_name"),
			URL:      field(row, "course_url"),
			ProfName: field(row, "prof_name"),
			Semester: field(row, "semester"),
			ExamForm: field(row, "exam_form"),
			Workload: field(row, "workload"),
			Type:     NormalizeOfferingType(field(row, "type")),
			Lang:     field(row, "lang"),
			Section:  field(row, "section"),
			Tags:     map[string][]string{},
		}
		if rec.Name == "" {
			continue
		}

		if credits, err := strconv.Atoi(field(row, "credits")); err == nil {
			rec.Credits = credits
		}
		if rec.Lang == "" {
			rec.Lang = "unknown"
		}
		if rec.Semester == "" {
			if inferred := InferSemesterFromLevel(field(row, "level")); inferred != "" {
				rec.Semester = inferred
			} else {
				rec.Semester = "unknown"
			}
		}

		for _, typeName := range tagTypeColumns {
			if tags := SplitTagCell(field(row, typeName)); len(tags) > 0 {
				rec.Tags[typeName] = tags
			}
		}

		records = append(records, rec)
	}

	return records, nil
}
