package dto

// ParetoRankRequest asks for a dominance ranking of an already-fetched result
// page. The item cap matches the maximum search page size; the ranking is
// O(n^2) and must never run over unbounded sets.
type ParetoRankRequest struct {
	Items      []ParetoItem     `json:"items" binding:"required,max=100,dive"`
	Preference ParetoPreference `json:"preference"`
}

// ParetoItem carries the two ranking axes of one course. Credits may be
// omitted (treated as 0) and workload is the raw catalog text; unparseable
// workloads rank as infinitely expensive.
type ParetoItem struct {
	ID       int64  `json:"id" binding:"required"`
	Credits  *int   `json:"credits"`
	Workload string `json:"workload"`
}

// ParetoPreference selects the per-axis objective. Defaults to maximizing
// credits while minimizing workload.
type ParetoPreference struct {
	Credits  string `json:"credits" binding:"omitempty,oneof=max min"`
	Workload string `json:"workload" binding:"omitempty,oneof=max min"`
}

// ParetoRankedItem is one input item with its dominance-front rank. Rank 0 is
// the non-dominated front.
type ParetoRankedItem struct {
	ID   int64 `json:"id"`
	Rank int   `json:"rank"`
}

// ParetoRankResponse returns the ranked items in presentation order:
// ascending rank, ties broken by the preferred axes. The ranking is
// presentation-only and never alters search totals.
type ParetoRankResponse struct {
	Items []ParetoRankedItem `json:"items"`
}
