package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doruk/courseatlas/internal/app/models/dto"
)

func intPtr(v int) *int { return &v }

func TestRankPageOrdersByDominanceFront(t *testing.T) {
	svc := NewCourseService(nil, nil, 0)

	// B dominates A (more credits, same workload); C is dominated by both.
	req := &dto.ParetoRankRequest{
		Items: []dto.ParetoItem{
			{ID: 1, Credits: intPtr(4), Workload: "4 hrs/week"},
			{ID: 2, Credits: intPtr(6), Workload: "4 hrs/week"},
			{ID: 3, Credits: intPtr(2), Workload: "8 hrs/week"},
		},
	}

	resp := svc.RankPage(req)
	require.Len(t, resp.Items, 3)

	assert.Equal(t, int64(2), resp.Items[0].ID)
	assert.Equal(t, 0, resp.Items[0].Rank)
	assert.Equal(t, int64(1), resp.Items[1].ID)
	assert.Equal(t, 1, resp.Items[1].Rank)
	assert.Equal(t, int64(3), resp.Items[2].ID)
	assert.Equal(t, 2, resp.Items[2].Rank)
}

func TestRankPageMissingValuesRankWorst(t *testing.T) {
	svc := NewCourseService(nil, nil, 0)

	req := &dto.ParetoRankRequest{
		Items: []dto.ParetoItem{
			{ID: 1, Credits: intPtr(4), Workload: "4 hrs/week"},
			{ID: 2, Workload: "no hours stated"}, // credits->0, workload->+Inf
		},
	}

	resp := svc.RankPage(req)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(1), resp.Items[0].ID)
	assert.Equal(t, 0, resp.Items[0].Rank)
	assert.Equal(t, int64(2), resp.Items[1].ID)
	assert.Equal(t, 1, resp.Items[1].Rank)
}

func TestRankPageHonorsPreference(t *testing.T) {
	svc := NewCourseService(nil, nil, 0)

	// Under min-credits the low-credit course leads the front.
	req := &dto.ParetoRankRequest{
		Items: []dto.ParetoItem{
			{ID: 1, Credits: intPtr(6), Workload: "4 hrs/week"},
			{ID: 2, Credits: intPtr(2), Workload: "4 hrs/week"},
		},
		Preference: dto.ParetoPreference{Credits: "min", Workload: "min"},
	}

	resp := svc.RankPage(req)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(2), resp.Items[0].ID)
	assert.Equal(t, 0, resp.Items[0].Rank)
	assert.Equal(t, 1, resp.Items[1].Rank)
}

func TestRankPageEmptyItems(t *testing.T) {
	svc := NewCourseService(nil, nil, 0)
	resp := svc.RankPage(&dto.ParetoRankRequest{})
	assert.Empty(t, resp.Items)
}
