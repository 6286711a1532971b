package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaginationClamps(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"zero page", 0, 20, 1, 20},
		{"negative page", -3, 20, 1, 20},
		{"oversized pageSize", 1, 500, 1, 100},
		{"zero pageSize", 1, 0, 1, 1},
		{"in range", 7, 50, 7, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := FilterSpec{Page: tt.page, PageSize: tt.size}.Normalize()
			assert.Equal(t, tt.wantPage, spec.Page)
			assert.Equal(t, tt.wantPageSize, spec.PageSize)
		})
	}
}

func TestNormalizeSortOrder(t *testing.T) {
	assert.Equal(t, SortAsc, FilterSpec{SortOrder: "ASC"}.Normalize().SortOrder)
	assert.Equal(t, SortAsc, FilterSpec{SortOrder: "asc"}.Normalize().SortOrder)
	assert.Equal(t, SortDesc, FilterSpec{SortOrder: "desc"}.Normalize().SortOrder)
	assert.Equal(t, SortDesc, FilterSpec{SortOrder: "sideways"}.Normalize().SortOrder)
	assert.Equal(t, SortDesc, FilterSpec{}.Normalize().SortOrder)
}

func TestNormalizeDropsEmptyTagLists(t *testing.T) {
	spec := FilterSpec{Tags: map[string][]string{
		"keywords":           {" AI ", "", "  "},
		"available_programs": {},
	}}.Normalize()
	assert.Equal(t, map[string][]string{"keywords": {"AI"}}, spec.Tags)
}

func TestNormalizeTrimsTextFields(t *testing.T) {
	spec := FilterSpec{Query: "  robotics  ", Semester: " winter ", Type: " optional ", Section: " IN "}.Normalize()
	assert.Equal(t, "robotics", spec.Query)
	assert.Equal(t, "winter", spec.Semester)
	assert.Equal(t, "optional", spec.Type)
	assert.Equal(t, "IN", spec.Section)
}

func TestOffset(t *testing.T) {
	spec := FilterSpec{Page: 3, PageSize: 25}.Normalize()
	assert.Equal(t, uint64(50), spec.Offset())

	spec = FilterSpec{Page: 0, PageSize: 10}.Normalize()
	assert.Equal(t, uint64(0), spec.Offset())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
	assert.Equal(t, []string{"AI", "ML"}, SplitList("AI,ML"))
	assert.Equal(t, []string{"AI", "ML"}, SplitList(" AI , ,ML, "))
	assert.Equal(t, []string{"Data Science"}, SplitList("Data Science"))
}
