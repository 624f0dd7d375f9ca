package scoring

import (
	"fmt"
	"sort"

	"carelog-go/internal/models"
)

// Dependency trend preconditions and shift threshold. The earliest-3 vs
// latest-3 comparison is a deliberately coarse heuristic; it stays fixed like
// every other threshold here.
const (
	dependencyMinEvents   = 6
	dependencyMinSpanDays = 14
	dependencyShift       = 0.5
)

// Trend descriptors stored alongside the score.
const (
	TrendIncreasing   = "increasing"
	TrendStable       = "stable"
	TrendInsufficient = "insufficient-data"
)

// ScoreDependency compares the mean assistance weight of the earliest 3
// qualifying events against the latest 3. Refused and Not Specified events
// carry no assistance data point and are excluded. The trend needs at least 6
// qualifying events spanning at least 14 days; anything less is a defined
// 0-point fallback, not an error. A rise of more than 0.5 scores 2 points;
// there is no intermediate bucket.
func ScoreDependency(events []models.CareEvent) (ComponentScore, string) {
	sorted := make([]models.CareEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EventTime.Before(sorted[j].EventTime)
	})

	var weights []float64
	var qualifying []models.CareEvent
	for _, e := range sorted {
		if w, ok := e.AssistanceLevel.DependencyWeight(); ok {
			weights = append(weights, float64(w))
			qualifying = append(qualifying, e)
		}
	}

	if len(weights) < dependencyMinEvents {
		return ComponentScore{
			Component:   ComponentDependency,
			Points:      0,
			Label:       models.RiskGreen,
			Explanation: fmt.Sprintf("Insufficient history for dependency trend (fewer than %d assessable events)", dependencyMinEvents),
		}, TrendInsufficient
	}

	span := qualifying[len(qualifying)-1].EventTime.Sub(qualifying[0].EventTime)
	if span.Hours() < float64(dependencyMinSpanDays)*24 {
		return ComponentScore{
			Component:   ComponentDependency,
			Points:      0,
			Label:       models.RiskGreen,
			Explanation: fmt.Sprintf("Insufficient history for dependency trend (events span fewer than %d days)", dependencyMinSpanDays),
		}, TrendInsufficient
	}

	baselineAvg := mean(weights[:3])
	recentAvg := mean(weights[len(weights)-3:])

	if recentAvg > baselineAvg+dependencyShift {
		return ComponentScore{
			Component:   ComponentDependency,
			Points:      2,
			Label:       models.RiskAmber,
			Explanation: fmt.Sprintf("Increasing dependency: baseline avg %.1f, recent avg %.1f", baselineAvg, recentAvg),
		}, TrendIncreasing
	}

	return ComponentScore{
		Component:   ComponentDependency,
		Points:      0,
		Label:       models.RiskGreen,
		Explanation: fmt.Sprintf("No significant dependency change (baseline avg %.1f, recent avg %.1f)", baselineAvg, recentAvg),
	}, TrendStable
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
