package search

import (
	"math"
	"sort"
)

// Objective states whether an axis is to be maximized or minimized.
type Objective string

const (
	Maximize Objective = "max"
	Minimize Objective = "min"
)

// ParetoPreference is the per-axis objective for the bi-objective ranking.
type ParetoPreference struct {
	Credits  Objective
	Workload Objective
}

// DefaultParetoPreference favors high credits at low workload.
var DefaultParetoPreference = ParetoPreference{Credits: Maximize, Workload: Minimize}

// ParetoPoint is one course on the credits/workload plane.
type ParetoPoint struct {
	Credits  float64
	Workload float64
}

// NewParetoPoint builds a point from raw course fields. Missing credits
// default to 0 and an unparseable workload to +Inf, the worst values under
// the default preference.
func NewParetoPoint(credits *int, workload string) ParetoPoint {
	p := ParetoPoint{Credits: 0, Workload: math.Inf(1)}
	if credits != nil {
		p.Credits = float64(*credits)
	}
	if hours, ok := WeeklyHours(workload); ok {
		p.Workload = hours
	}
	return p
}

func (pref ParetoPreference) normalize() ParetoPreference {
	if pref.Credits != Minimize {
		pref.Credits = Maximize
	}
	if pref.Workload != Maximize {
		pref.Workload = Minimize
	}
	return pref
}

func betterOrEqual(a, b float64, obj Objective) bool {
	if obj == Minimize {
		return a <= b
	}
	return a >= b
}

func strictlyBetter(a, b float64, obj Objective) bool {
	if obj == Minimize {
		return a < b
	}
	return a > b
}

// dominates reports whether a is at least as good as b on both axes and
// strictly better on at least one.
func dominates(a, b ParetoPoint, pref ParetoPreference) bool {
	return betterOrEqual(a.Credits, b.Credits, pref.Credits) &&
		betterOrEqual(a.Workload, b.Workload, pref.Workload) &&
		(strictlyBetter(a.Credits, b.Credits, pref.Credits) ||
			strictlyBetter(a.Workload, b.Workload, pref.Workload))
}

// ParetoRanks assigns each point its dominance-front rank: rank 0 is the
// non-dominated front, rank k holds the points whose dominators all sit in
// ranks below k. The dominance relation is materialized as index-based
// adjacency lists plus dominated-by counters and the fronts are peeled
// iteratively. Presentation-only: O(n^2) over an already-fetched page, never
// applied to unbounded sets.
func ParetoRanks(points []ParetoPoint, pref ParetoPreference) []int {
	pref = pref.normalize()
	n := len(points)
	dominatedBy := make([]int, n)
	dominatesList := make([][]int, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if dominates(points[i], points[j], pref) {
				dominatesList[i] = append(dominatesList[i], j)
			} else if dominates(points[j], points[i], pref) {
				dominatedBy[i]++
			}
		}
	}

	ranks := make([]int, n)
	for i := range ranks {
		ranks[i] = -1
	}

	var current []int
	for i := 0; i < n; i++ {
		if dominatedBy[i] == 0 {
			current = append(current, i)
		}
	}

	rank := 0
	for len(current) > 0 {
		var next []int
		for _, i := range current {
			ranks[i] = rank
			for _, j := range dominatesList[i] {
				dominatedBy[j]--
				if dominatedBy[j] == 0 {
					next = append(next, j)
				}
			}
		}
		current = next
		rank++
	}

	// A finite acyclic dominance graph always drains; anything left is
	// treated as worst-rank.
	for i := range ranks {
		if ranks[i] == -1 {
			ranks[i] = rank
		}
	}
	return ranks
}

// OrderByRank returns the presentation order of the points: ascending rank,
// ties broken by the preferred axis order (credits first, then workload),
// stable otherwise.
func OrderByRank(points []ParetoPoint, ranks []int, pref ParetoPreference) []int {
	pref = pref.normalize()
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		i, j := order[x], order[y]
		if ranks[i] != ranks[j] {
			return ranks[i] < ranks[j]
		}
		if points[i].Credits != points[j].Credits {
			return strictlyBetter(points[i].Credits, points[j].Credits, pref.Credits)
		}
		if points[i].Workload != points[j].Workload {
			return strictlyBetter(points[i].Workload, points[j].Workload, pref.Workload)
		}
		return false
	})
	return order
}
