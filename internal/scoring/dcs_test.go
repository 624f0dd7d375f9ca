package scoring

import (
	"testing"

	"carelog-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDCS_Classification(t *testing.T) {
	cfg := models.DomainConfig{Name: "Toileting", ExpectedPerDay: 4.0, GapAmberHours: 12, GapRedHours: 24}

	tests := []struct {
		name       string
		actual     int
		windowDays int
		wantPct    float64
		wantLevel  models.RiskLevel
	}{
		{name: "fully compliant", actual: 28, windowDays: 7, wantPct: 100, wantLevel: models.RiskGreen},
		{name: "exactly 90 percent is green", actual: 18, windowDays: 5, wantPct: 90, wantLevel: models.RiskGreen},
		{name: "exactly 60 percent is amber", actual: 12, windowDays: 5, wantPct: 60, wantLevel: models.RiskAmber},
		{name: "just under 60 is red", actual: 11, windowDays: 5, wantPct: 55, wantLevel: models.RiskRed},
		{name: "nothing recorded", actual: 0, windowDays: 7, wantPct: 0, wantLevel: models.RiskRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateDCS(tt.actual, cfg, tt.windowDays)
			assert.InDelta(t, tt.wantPct, result.CompliancePercentage, 0.01)
			assert.Equal(t, tt.wantLevel, result.RiskLevel)
			assert.Equal(t, tt.actual, result.ActualEntries)
		})
	}
}

func TestCalculateDCS_PercentageNeverClamped(t *testing.T) {
	// 12 actual over 8 expected is 150%, reported as-is and classified GREEN.
	// Clipping would hide duplicate-entry audit signals.
	cfg := models.DomainConfig{Name: "Washing/Bathing", ExpectedPerDay: 2.0, GapAmberHours: 24, GapRedHours: 48}
	result := CalculateDCS(12, cfg, 4)
	assert.InDelta(t, 150.0, result.CompliancePercentage, 1e-9)
	assert.Equal(t, models.RiskGreen, result.RiskLevel)
}

func TestCalculateDCS_ExpectedIsDecimal(t *testing.T) {
	// Grooming at 0.5/day over 7 days expects 3.5 entries, not rounded.
	cfg := models.DomainConfig{Name: "Grooming", ExpectedPerDay: 0.5, GapAmberHours: 48, GapRedHours: 96}
	result := CalculateDCS(3, cfg, 7)
	assert.InDelta(t, 3.5, result.ExpectedEntries, 1e-9)
	assert.InDelta(t, 85.71, result.CompliancePercentage, 0.01)
	assert.Equal(t, models.RiskAmber, result.RiskLevel)
}

func TestCalculateDCS_ZeroExpectationIsNotApplicable(t *testing.T) {
	// The registry loader refuses such domains, but a registry built in code
	// must still surface the misconfiguration instead of reporting 100%.
	cfg := models.DomainConfig{Name: "Broken", ExpectedPerDay: 0, GapAmberHours: 1, GapRedHours: 2}
	result := CalculateDCS(5, cfg, 7)
	assert.Equal(t, models.RiskNotApplicable, result.RiskLevel)
	assert.Equal(t, 5, result.ActualEntries)
	assert.Contains(t, result.Explanation, "not applicable")
}

func TestCalculateDCS_ExplanationStatesEvidence(t *testing.T) {
	cfg := models.DomainConfig{Name: "Oral Care", ExpectedPerDay: 2.0, GapAmberHours: 16, GapRedHours: 24}
	result := CalculateDCS(3, cfg, 7)
	assert.Contains(t, result.Explanation, "3 entries recorded")
	assert.Contains(t, result.Explanation, "14.0 expected")
}
