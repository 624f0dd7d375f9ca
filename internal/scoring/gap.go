package scoring

import (
	"fmt"
	"sort"

	"carelog-go/internal/models"
)

// MaxGapHours returns the largest elapsed time, in fractional hours, between
// any two chronologically consecutive events. With fewer than 2 events the
// gap is undefined and ok is false.
func MaxGapHours(events []models.CareEvent) (float64, bool) {
	if len(events) < 2 {
		return 0, false
	}

	sorted := make([]models.CareEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EventTime.Before(sorted[j].EventTime)
	})

	maxGap := 0.0
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].EventTime.Sub(sorted[i-1].EventTime).Hours()
		if gap > maxGap {
			maxGap = gap
		}
	}
	return maxGap, true
}

// ScoreGap maps a maximum gap against the domain's thresholds:
// gap <= amber = 0, amber < gap <= red = 2, gap > red = 3. A gap exactly at a
// threshold falls in the safer bucket. An undefined gap (fewer than 2 events)
// is a conservative 0: missing data is scored by documentation compliance,
// not twice as a care gap.
func ScoreGap(maxGapHours float64, measured bool, cfg models.DomainConfig) ComponentScore {
	if !measured {
		return ComponentScore{
			Component:   ComponentGap,
			Points:      0,
			Label:       models.RiskGreen,
			Explanation: "Fewer than 2 events in window; gap analysis not possible",
		}
	}

	switch {
	case maxGapHours > cfg.GapRedHours:
		return ComponentScore{
			Component:   ComponentGap,
			Points:      3,
			Label:       models.RiskRed,
			Explanation: fmt.Sprintf("Max gap %.1fh exceeds %.0fh red threshold", maxGapHours, cfg.GapRedHours),
		}
	case maxGapHours > cfg.GapAmberHours:
		return ComponentScore{
			Component:   ComponentGap,
			Points:      2,
			Label:       models.RiskAmber,
			Explanation: fmt.Sprintf("Max gap %.1fh exceeds %.0fh amber threshold (red at %.0fh)", maxGapHours, cfg.GapAmberHours, cfg.GapRedHours),
		}
	default:
		return ComponentScore{
			Component:   ComponentGap,
			Points:      0,
			Label:       models.RiskGreen,
			Explanation: fmt.Sprintf("Max gap %.1fh within %.0fh amber threshold", maxGapHours, cfg.GapAmberHours),
		}
	}
}
