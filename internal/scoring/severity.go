package scoring

import "carelog-go/internal/models"

// WorstBy is the single worst-wins reduction used everywhere a "most severe"
// pick is made: unit rollups and headline-reason selection both go through it
// so tie-break behavior stays consistent. The highest-ranked element wins;
// ties keep the earliest element, which makes priority a matter of input
// order. ok is false for an empty slice.
func WorstBy[T any](items []T, rank func(T) int) (worst T, ok bool) {
	if len(items) == 0 {
		return worst, false
	}
	worst = items[0]
	best := rank(worst)
	for _, item := range items[1:] {
		if r := rank(item); r > best {
			worst, best = item, r
		}
	}
	return worst, true
}

// WorstLevel reduces risk levels under RED > AMBER > GREEN > N/A.
// An empty input reduces to N/A, the identity of the reduction.
func WorstLevel(levels ...models.RiskLevel) models.RiskLevel {
	worst, ok := WorstBy(levels, func(l models.RiskLevel) int { return l.SeverityRank() })
	if !ok {
		return models.RiskNotApplicable
	}
	return worst
}
