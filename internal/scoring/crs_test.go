package scoring

import (
	"testing"
	"time"

	"carelog-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRSLevelForTotal(t *testing.T) {
	tests := []struct {
		total int
		want  models.RiskLevel
	}{
		{0, models.RiskGreen},
		{1, models.RiskGreen},
		{2, models.RiskAmber},
		{3, models.RiskAmber},
		{4, models.RiskAmber},
		{5, models.RiskRed},
		{6, models.RiskRed},
		{7, models.RiskRed},
		{8, models.RiskRed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CRSLevelForTotal(tt.total), "total=%d", tt.total)
		// Idempotent: same total, same level, always.
		assert.Equal(t, CRSLevelForTotal(tt.total), CRSLevelForTotal(tt.total))
	}
}

func TestCalculateCRS_TotalIsComponentSum(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	// 2 refusals (2 pts) and a 30h gap over red (3 pts) = 5 = RED.
	events := []models.CareEvent{
		{EventTime: base, AssistanceLevel: models.Refused, IsRefusal: true},
		{EventTime: base.Add(2 * time.Hour), AssistanceLevel: models.Refused, IsRefusal: true},
		{EventTime: base.Add(32 * time.Hour), AssistanceLevel: models.SomeAssistance},
	}

	result := CalculateCRS(events, gapTestConfig)

	require.Len(t, result.Components, 3)
	sum := 0
	for _, c := range result.Components {
		sum += c.Points
	}
	assert.Equal(t, sum, result.TotalPoints)
	assert.Equal(t, 5, result.TotalPoints)
	assert.Equal(t, models.RiskRed, result.RiskLevel)
}

func TestCalculateCRS_ComponentOrderIsFixed(t *testing.T) {
	result := CalculateCRS(nil, gapTestConfig)
	require.Len(t, result.Components, 3)
	assert.Equal(t, ComponentRefusal, result.Components[0].Component)
	assert.Equal(t, ComponentGap, result.Components[1].Component)
	assert.Equal(t, ComponentDependency, result.Components[2].Component)
}

func TestCalculateCRS_DeterministicExplanation(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	events := []models.CareEvent{
		{EventTime: base, AssistanceLevel: models.SomeAssistance},
		{EventTime: base.Add(18 * time.Hour), AssistanceLevel: models.Refused, IsRefusal: true},
		{EventTime: base.Add(26 * time.Hour), AssistanceLevel: models.SomeAssistance},
	}

	first := CalculateCRS(events, gapTestConfig)
	second := CalculateCRS(events, gapTestConfig)

	// Identical inputs render byte-identical explanations.
	assert.Equal(t, first.Explanation, second.Explanation)
	assert.Contains(t, first.Explanation, "refusal:")
	assert.Contains(t, first.Explanation, "gap:")
	assert.Contains(t, first.Explanation, "dependency:")
	assert.Contains(t, first.Explanation, "total 2 points = AMBER")
}

func TestCalculateCRS_RawStats(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	events := []models.CareEvent{
		{EventTime: base, AssistanceLevel: models.Refused, IsRefusal: true},
		{EventTime: base.Add(6 * time.Hour), AssistanceLevel: models.SomeAssistance},
	}

	result := CalculateCRS(events, gapTestConfig)
	assert.Equal(t, 1, result.RefusalCount)
	require.NotNil(t, result.MaxGapHours)
	assert.InDelta(t, 6.0, *result.MaxGapHours, 1e-9)
	assert.Equal(t, TrendInsufficient, result.DependencyTrend)
}

func TestCalculateCRS_NoGapDataLeavesMaxGapNil(t *testing.T) {
	result := CalculateCRS([]models.CareEvent{
		{EventTime: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), AssistanceLevel: models.SomeAssistance},
	}, gapTestConfig)
	assert.Nil(t, result.MaxGapHours)
}
