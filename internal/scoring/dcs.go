package scoring

import (
	"fmt"

	"carelog-go/internal/models"
)

// Documentation compliance breakpoints, as percentages of expected entries.
const (
	dcsGreenPercent = 90.0
	dcsAmberPercent = 60.0
)

// DCSResult is the Documentation Compliance Score for one
// (resident, domain, window).
type DCSResult struct {
	ActualEntries        int              `json:"actualEntries"`
	ExpectedEntries      float64          `json:"expectedEntries"`
	CompliancePercentage float64          `json:"compliancePercentage"`
	RiskLevel            models.RiskLevel `json:"riskLevel"`
	Explanation          string           `json:"explanation"`
}

// CalculateDCS compares actual against expected entry counts for the window.
// Every event counts as a documented interaction, refusals included. The
// percentage is never capped at 100: over-documentation is its own audit
// signal and clipping would hide it. A zero expectation yields NOT-APPLICABLE
// rather than a silent 100% - that is a configuration signal, and the registry
// loader rejects such domains before they reach here.
func CalculateDCS(actualEntries int, cfg models.DomainConfig, windowDays int) DCSResult {
	expected := cfg.ExpectedPerDay * float64(windowDays)

	if expected == 0 {
		return DCSResult{
			ActualEntries:   actualEntries,
			ExpectedEntries: 0,
			RiskLevel:       models.RiskNotApplicable,
			Explanation:     fmt.Sprintf("Domain %q expects no entries; compliance not applicable", cfg.Name),
		}
	}

	pct := float64(actualEntries) / expected * 100

	var level models.RiskLevel
	switch {
	case pct >= dcsGreenPercent:
		level = models.RiskGreen
	case pct >= dcsAmberPercent:
		level = models.RiskAmber
	default:
		level = models.RiskRed
	}

	return DCSResult{
		ActualEntries:        actualEntries,
		ExpectedEntries:      expected,
		CompliancePercentage: pct,
		RiskLevel:            level,
		Explanation:          fmt.Sprintf("%d entries recorded / %.1f expected = %.1f%% compliance", actualEntries, expected, pct),
	}
}
