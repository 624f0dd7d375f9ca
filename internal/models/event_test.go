package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssistanceLevel(t *testing.T) {
	for _, valid := range []string{
		"Independent", "Some Assistance", "Full Assistance", "Refused", "Not Specified",
	} {
		level, err := ParseAssistanceLevel(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, AssistanceLevel(valid), level)
	}

	// Malformed values are rejected at the model boundary, before any scorer.
	for _, invalid := range []string{"", "independent", "SOME ASSISTANCE", "Partial", "refused "} {
		_, err := ParseAssistanceLevel(invalid)
		assert.Error(t, err, "%q should be rejected", invalid)
	}
}

func TestDependencyWeight_TotalMapping(t *testing.T) {
	tests := []struct {
		level      AssistanceLevel
		wantWeight int
		wantOK     bool
	}{
		{Independent, 0, true},
		{SomeAssistance, 1, true},
		{FullAssistance, 2, true},
		{Refused, 0, false},
		{NotSpecified, 0, false},
	}
	for _, tt := range tests {
		w, ok := tt.level.DependencyWeight()
		assert.Equal(t, tt.wantOK, ok, string(tt.level))
		assert.Equal(t, tt.wantWeight, w, string(tt.level))
	}
}

func TestRiskLevelSeverityRank(t *testing.T) {
	assert.Greater(t, RiskRed.SeverityRank(), RiskAmber.SeverityRank())
	assert.Greater(t, RiskAmber.SeverityRank(), RiskGreen.SeverityRank())
	assert.Greater(t, RiskGreen.SeverityRank(), RiskNotApplicable.SeverityRank())
}

func TestClassifyAssistance(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        AssistanceLevel
	}{
		{name: "independent phrasing", description: "Brushed his teeth on his own this morning", want: Independent},
		{name: "dressed herself", description: "Dressed herself before breakfast", want: Independent},
		{name: "full support", description: "Required full support with washing", want: FullAssistance},
		{name: "prompting", description: "Needed prompting to use the toilet", want: SomeAssistance},
		{name: "refusal phrasing", description: "Declined oral care this evening", want: Refused},
		{name: "absent resident is not specified", description: "Resident away, out with family", want: NotSpecified},
		{name: "no signal", description: "Routine visit", want: NotSpecified},
		{name: "empty text", want: NotSpecified},
		{name: "signal in title", title: "Refused shower", want: Refused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAssistance(tt.title, tt.description))
		})
	}
}

func TestDetectRefusal(t *testing.T) {
	assert.True(t, DetectRefusal("", "Refused breakfast"))
	assert.True(t, DetectRefusal("Oral care", "didn't want to brush teeth"))
	assert.True(t, DetectRefusal("", "Skipped morning wash"))
	assert.False(t, DetectRefusal("", "Assisted with dressing"))
	// An absent resident did not refuse care.
	assert.False(t, DetectRefusal("", "Refused? No - resident at hospital"))
	assert.False(t, DetectRefusal("", "On leave with family"))
}
