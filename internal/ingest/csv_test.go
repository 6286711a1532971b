package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTagCell(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single value", "machine learning", []string{"machine learning"}},
		{"single quoted array", "['ai', 'robotics']", []string{"ai", "robotics"}},
		{"double quoted array", `["ai", "robotics"]`, []string{"ai", "robotics"}},
		{"array with blanks", "['ai', '', ' robotics ']", []string{"ai", "robotics"}},
		{"broken array falls back to single value", "[ai, robotics", []string{"[ai, robotics"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTagCell(tt.cell))
		})
	}
}

func TestNormalizeOfferingType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"mandatory", "mandatory"},
		{"Optional", "optional"},
		{"Compulsory course", "mandatory"},
		{"required", "mandatory"},
		{"core", "mandatory"},
		{"Elective", "optional"},
		{"seminar", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeOfferingType(tt.raw), "raw=%q", tt.raw)
	}
}

func TestInferSemesterFromLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"MA Project Spring", "summer"},
		{"BA Autumn", "winter"},
		{"Fall semester", "winter"},
		{"BA1", "winter"},
		{"BA2", "summer"},
		{"MA3", "winter"},
		{"no season here", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferSemesterFromLevel(tt.level), "level=%q", tt.level)
	}
}

func TestParseRecords(t *testing.T) {
	csv := `course_code,course_name,course_url,prof_name,credits,semester,exam_form,workload,type,lang,section,keywords,available_programs,level
CS-433,Machine Learning,https://example.org/cs-433,Jaggi,8,winter,written,4 hrs/week,required,english,IN,"['ml', 'optimization']",['Computer Science'],
CS-101,,,,4,,,,,,,,,
HUM-200,Design Thinking,,Weber,,,oral,,elective,,SHS,design,,MA Project Spring
`
	records, err := ParseRecords(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2) // nameless row dropped

	ml := records[0]
	assert.Equal(t, "CS-433", ml.Code)
	assert.Equal(t, "Machine Learning", ml.Name)
	assert.Equal(t, 8, ml.Credits)
	assert.Equal(t, "mandatory", ml.Type)
	assert.Equal(t, "IN", ml.Section)
	assert.Equal(t, []string{"ml", "optimization"}, ml.Tags["keywords"])
	assert.Equal(t, []string{"Computer Science"}, ml.Tags["available_programs"])

	dt := records[1]
	assert.Equal(t, "HUM-200", dt.Code)
	assert.Equal(t, 0, dt.Credits)
	assert.Equal(t, "optional", dt.Type)
	assert.Equal(t, "unknown", dt.Lang)
	// semester inferred from the level column when the semester cell is empty
	assert.Equal(t, "summer", dt.Semester)
	assert.Equal(t, []string{"design"}, dt.Tags["keywords"])
}

func TestParseRecordsEmptyInput(t *testing.T) {
	records, err := ParseRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, records)
}
