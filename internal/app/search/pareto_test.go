package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestParetoRanksFrontPeeling(t *testing.T) {
	// B dominates A and C; A dominates C.
	points := []ParetoPoint{
		{Credits: 6, Workload: 4}, // A
		{Credits: 8, Workload: 4}, // B
		{Credits: 6, Workload: 6}, // C
	}
	ranks := ParetoRanks(points, ParetoPreference{Credits: Maximize, Workload: Minimize})
	assert.Equal(t, []int{1, 0, 2}, ranks)
}

func TestParetoRanksIncomparableShareFront(t *testing.T) {
	points := []ParetoPoint{
		{Credits: 8, Workload: 8},
		{Credits: 4, Workload: 2},
	}
	ranks := ParetoRanks(points, DefaultParetoPreference)
	assert.Equal(t, []int{0, 0}, ranks)
}

func TestParetoRanksIdenticalPoints(t *testing.T) {
	points := []ParetoPoint{
		{Credits: 6, Workload: 4},
		{Credits: 6, Workload: 4},
		{Credits: 6, Workload: 4},
	}
	ranks := ParetoRanks(points, DefaultParetoPreference)
	assert.Equal(t, []int{0, 0, 0}, ranks)
}

func TestParetoRanksEmpty(t *testing.T) {
	assert.Empty(t, ParetoRanks(nil, DefaultParetoPreference))
}

func TestParetoRanksInvertedPreference(t *testing.T) {
	points := []ParetoPoint{
		{Credits: 6, Workload: 4},
		{Credits: 8, Workload: 4},
	}
	ranks := ParetoRanks(points, ParetoPreference{Credits: Minimize, Workload: Minimize})
	assert.Equal(t, []int{0, 1}, ranks)
}

func TestNewParetoPointDefaults(t *testing.T) {
	p := NewParetoPoint(nil, "no idea")
	assert.Equal(t, 0.0, p.Credits)
	assert.True(t, math.IsInf(p.Workload, 1))

	p = NewParetoPoint(intPtr(6), "56 hrs/semester")
	assert.Equal(t, 6.0, p.Credits)
	assert.InDelta(t, 4.0, p.Workload, 1e-9)
}

func TestParetoMissingWorkloadRanksWorst(t *testing.T) {
	points := []ParetoPoint{
		NewParetoPoint(intPtr(6), "4 hrs/week"),
		NewParetoPoint(intPtr(6), "unknown"),
	}
	ranks := ParetoRanks(points, DefaultParetoPreference)
	assert.Equal(t, []int{0, 1}, ranks)
}

func TestOrderByRank(t *testing.T) {
	points := []ParetoPoint{
		{Credits: 6, Workload: 6}, // rank 2
		{Credits: 8, Workload: 4}, // rank 0
		{Credits: 6, Workload: 4}, // rank 1
	}
	pref := DefaultParetoPreference
	ranks := ParetoRanks(points, pref)
	order := OrderByRank(points, ranks, pref)
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestOrderByRankTieBreaksOnCreditsFirst(t *testing.T) {
	// Same front; higher credits should lead under the default preference.
	points := []ParetoPoint{
		{Credits: 4, Workload: 2},
		{Credits: 8, Workload: 8},
	}
	pref := DefaultParetoPreference
	ranks := ParetoRanks(points, pref)
	assert.Equal(t, []int{0, 0}, ranks)
	order := OrderByRank(points, ranks, pref)
	assert.Equal(t, []int{1, 0}, order)
}

func TestOrderByRankStableForEqualPoints(t *testing.T) {
	points := []ParetoPoint{
		{Credits: 6, Workload: 4},
		{Credits: 6, Workload: 4},
	}
	pref := DefaultParetoPreference
	order := OrderByRank(points, ParetoRanks(points, pref), pref)
	assert.Equal(t, []int{0, 1}, order)
}
