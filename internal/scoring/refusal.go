package scoring

import (
	"fmt"

	"carelog-go/internal/models"
)

// Refusal count breakpoints. Fixed for every domain; these never move with
// population performance.
const (
	refusalAmberCount = 2
	refusalRedCount   = 4
)

// CountRefusals counts events flagged as refusals. The flag is independent of
// the assistance level so inconsistently labeled sources still count.
func CountRefusals(events []models.CareEvent) int {
	count := 0
	for _, e := range events {
		if e.IsRefusal {
			count++
		}
	}
	return count
}

// ScoreRefusals maps a window's refusal count onto points:
// 0-1 refusals = 0, 2-3 = 2, 4+ = 3. An empty window is a valid 0.
func ScoreRefusals(events []models.CareEvent) ComponentScore {
	count := CountRefusals(events)

	switch {
	case count >= refusalRedCount:
		return ComponentScore{
			Component:   ComponentRefusal,
			Points:      3,
			Label:       models.RiskRed,
			Explanation: fmt.Sprintf("%d refusals in window (4+ refusals = immediate review)", count),
		}
	case count >= refusalAmberCount:
		return ComponentScore{
			Component:   ComponentRefusal,
			Points:      2,
			Label:       models.RiskAmber,
			Explanation: fmt.Sprintf("%d refusals in window (2-3 refusals = monitoring required)", count),
		}
	default:
		return ComponentScore{
			Component:   ComponentRefusal,
			Points:      0,
			Label:       models.RiskGreen,
			Explanation: fmt.Sprintf("%d refusal(s) in window (0-1 refusals = no concern)", count),
		}
	}
}
