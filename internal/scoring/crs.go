package scoring

import "carelog-go/internal/models"

// Care Risk Score level breakpoints over the component total (range 0-8).
const (
	crsAmberPoints = 2
	crsRedPoints   = 5
)

// CRSResult is the Care Risk Score for one (resident, domain, window).
type CRSResult struct {
	TotalPoints int              `json:"totalPoints"`
	RiskLevel   models.RiskLevel `json:"riskLevel"`
	// Components always holds refusal, gap, dependency in that order so two
	// runs over identical inputs render byte-identical explanations.
	Components  []ComponentScore `json:"components"`
	Explanation string           `json:"explanation"`

	RefusalCount    int      `json:"refusalCount"`
	MaxGapHours     *float64 `json:"maxGapHours,omitempty"`
	DependencyTrend string   `json:"dependencyTrend"`
}

// CRSLevelForTotal maps a component total onto a risk level. Pure and
// idempotent: the same total always yields the same level.
func CRSLevelForTotal(total int) models.RiskLevel {
	switch {
	case total >= crsRedPoints:
		return models.RiskRed
	case total >= crsAmberPoints:
		return models.RiskAmber
	default:
		return models.RiskGreen
	}
}

// CalculateCRS runs the three component scorers and sums their points.
// No clamping beyond each component's own bound.
func CalculateCRS(events []models.CareEvent, cfg models.DomainConfig) CRSResult {
	refusal := ScoreRefusals(events)

	maxGap, measured := MaxGapHours(events)
	gap := ScoreGap(maxGap, measured, cfg)

	dependency, trend := ScoreDependency(events)

	total := refusal.Points + gap.Points + dependency.Points
	level := CRSLevelForTotal(total)
	components := []ComponentScore{refusal, gap, dependency}

	result := CRSResult{
		TotalPoints:     total,
		RiskLevel:       level,
		Components:      components,
		Explanation:     FormatCRSExplanation(components, total, level),
		RefusalCount:    CountRefusals(events),
		DependencyTrend: trend,
	}
	if measured {
		result.MaxGapHours = &maxGap
	}
	return result
}
