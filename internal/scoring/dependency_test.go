package scoring

import (
	"testing"
	"time"

	"carelog-go/internal/models"

	"github.com/stretchr/testify/assert"
)

// spanEvents builds one event per level, spaced dayStep days apart.
func spanEvents(levels []models.AssistanceLevel, dayStep int) []models.CareEvent {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	events := make([]models.CareEvent, len(levels))
	for i, level := range levels {
		events[i] = models.CareEvent{
			EventTime:       base.AddDate(0, 0, i*dayStep),
			AssistanceLevel: level,
		}
	}
	return events
}

func TestScoreDependency_IncreasingTrend(t *testing.T) {
	// Independent baseline shifting to full assistance over 15 days.
	events := spanEvents([]models.AssistanceLevel{
		models.Independent, models.Independent, models.Independent,
		models.FullAssistance, models.FullAssistance, models.FullAssistance,
	}, 3)

	score, trend := ScoreDependency(events)
	assert.Equal(t, 2, score.Points)
	assert.Equal(t, TrendIncreasing, trend)
	assert.Contains(t, score.Explanation, "baseline avg 0.0")
	assert.Contains(t, score.Explanation, "recent avg 2.0")
}

func TestScoreDependency_NoSignificantChange(t *testing.T) {
	events := spanEvents([]models.AssistanceLevel{
		models.SomeAssistance, models.SomeAssistance, models.SomeAssistance,
		models.SomeAssistance, models.SomeAssistance, models.SomeAssistance,
	}, 3)

	score, trend := ScoreDependency(events)
	assert.Equal(t, 0, score.Points)
	assert.Equal(t, TrendStable, trend)
}

func TestScoreDependency_ShiftMustExceedHalfPoint(t *testing.T) {
	// Baseline avg 1.0, recent avg 1.33: a shift of a third of a point is
	// below the 0.5 threshold and scores nothing.
	events := spanEvents([]models.AssistanceLevel{
		models.SomeAssistance, models.SomeAssistance, models.SomeAssistance,
		models.SomeAssistance, models.SomeAssistance, models.FullAssistance,
	}, 3)

	score, trend := ScoreDependency(events)
	assert.Equal(t, 0, score.Points)
	assert.Equal(t, TrendStable, trend)
}

func TestScoreDependency_FiveQualifyingEventsIsFallbackNotError(t *testing.T) {
	events := spanEvents([]models.AssistanceLevel{
		models.Independent, models.Independent, models.SomeAssistance,
		models.FullAssistance, models.FullAssistance,
	}, 4)

	score, trend := ScoreDependency(events)
	assert.Equal(t, 0, score.Points)
	assert.Equal(t, TrendInsufficient, trend)
	assert.Contains(t, score.Explanation, "Insufficient history")
}

func TestScoreDependency_RefusedAndNotSpecifiedExcluded(t *testing.T) {
	// Eight events but only five carry an assistance data point.
	events := spanEvents([]models.AssistanceLevel{
		models.Independent, models.Refused, models.Independent,
		models.NotSpecified, models.SomeAssistance, models.Refused,
		models.FullAssistance, models.FullAssistance,
	}, 3)

	score, trend := ScoreDependency(events)
	assert.Equal(t, 0, score.Points)
	assert.Equal(t, TrendInsufficient, trend)
}

func TestScoreDependency_ShortSpanIsInsufficient(t *testing.T) {
	// Six qualifying events inside a single week cannot establish a trend.
	events := spanEvents([]models.AssistanceLevel{
		models.Independent, models.Independent, models.Independent,
		models.FullAssistance, models.FullAssistance, models.FullAssistance,
	}, 1)

	score, trend := ScoreDependency(events)
	assert.Equal(t, 0, score.Points)
	assert.Equal(t, TrendInsufficient, trend)
	assert.Contains(t, score.Explanation, "span fewer than 14 days")
}

func TestScoreDependency_UsesChronologicalOrder(t *testing.T) {
	events := spanEvents([]models.AssistanceLevel{
		models.Independent, models.Independent, models.Independent,
		models.FullAssistance, models.FullAssistance, models.FullAssistance,
	}, 3)
	// Reverse the slice; the scorer must sort by event time itself.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	score, trend := ScoreDependency(events)
	assert.Equal(t, 2, score.Points)
	assert.Equal(t, TrendIncreasing, trend)
}
