package models

import (
	"fmt"
	"strings"
	"time"
)

// AssistanceLevel is the closed set of assistance categories a care event
// can carry. Values match the labels used by the source care-log systems.
type AssistanceLevel string

const (
	Independent    AssistanceLevel = "Independent"
	SomeAssistance AssistanceLevel = "Some Assistance"
	FullAssistance AssistanceLevel = "Full Assistance"
	Refused        AssistanceLevel = "Refused"
	NotSpecified   AssistanceLevel = "Not Specified"
)

// ParseAssistanceLevel validates a raw string against the closed enum.
// Unrecognized values are rejected here, before any event reaches a scorer.
func ParseAssistanceLevel(raw string) (AssistanceLevel, error) {
	switch AssistanceLevel(raw) {
	case Independent, SomeAssistance, FullAssistance, Refused, NotSpecified:
		return AssistanceLevel(raw), nil
	}
	return "", fmt.Errorf("unrecognized assistance level %q", raw)
}

// DependencyWeight maps an assistance level to the numeric weight used by the
// dependency trend calculation. Refused and Not Specified events carry no
// assistance information, so ok is false and they are excluded from averages.
func (a AssistanceLevel) DependencyWeight() (int, bool) {
	switch a {
	case Independent:
		return 0, true
	case SomeAssistance:
		return 1, true
	case FullAssistance:
		return 2, true
	default:
		return 0, false
	}
}

// RiskLevel is a fixed traffic-light classification. NOT-APPLICABLE is only
// produced by the documentation compliance calculator.
type RiskLevel string

const (
	RiskGreen         RiskLevel = "GREEN"
	RiskAmber         RiskLevel = "AMBER"
	RiskRed           RiskLevel = "RED"
	RiskNotApplicable RiskLevel = "N/A"
)

// SeverityRank orders risk levels for worst-wins reductions.
// RED > AMBER > GREEN > N/A.
func (r RiskLevel) SeverityRank() int {
	switch r {
	case RiskRed:
		return 3
	case RiskAmber:
		return 2
	case RiskGreen:
		return 1
	default:
		return 0
	}
}

// CareEvent is one recorded care interaction for a resident in one ADL
// domain. Events are immutable once built; scorers only read them.
type CareEvent struct {
	ID              int `gorm:"primaryKey"`
	ResidentID      int
	DomainID        int
	EventTime       time.Time // when the care was delivered
	LoggedTime      time.Time // when it was recorded; late entries are valid
	AssistanceLevel AssistanceLevel
	IsRefusal       bool
	Title           string
	Description     string
	CreatedAt       time.Time
}

var absenceKeywords = []string{" away", "away ", "away.", "away,", "on leave", "out with family", "at hospital"}

var refusalKeywords = []string{"refused", "declined", "didn't want", "did not want", "skipped"}

// ClassifyAssistance extracts an assistance level from free text for sources
// that lack a structured field. Used only at the ingestion boundary, never by
// the scorers.
func ClassifyAssistance(title, description string) AssistanceLevel {
	combined := strings.ToLower(description + " " + title)

	for _, kw := range absenceKeywords {
		if strings.Contains(combined, kw) {
			return NotSpecified
		}
	}
	for _, kw := range refusalKeywords {
		if strings.Contains(combined, kw) {
			return Refused
		}
	}
	for _, kw := range []string{"on his own", "on her own", "independently", "dressed herself", "dressed himself"} {
		if strings.Contains(combined, kw) {
			return Independent
		}
	}
	for _, kw := range []string{"full support", "full assistance", "fully assisted"} {
		if strings.Contains(combined, kw) {
			return FullAssistance
		}
	}
	for _, kw := range []string{"with assistance", "some assistance", "prompting", "prompted", "helped"} {
		if strings.Contains(combined, kw) {
			return SomeAssistance
		}
	}
	return NotSpecified
}

// DetectRefusal reports whether free text indicates a refused interaction.
// Entries describing an absent resident are not refusals.
func DetectRefusal(title, description string) bool {
	combined := strings.ToLower(description + " " + title)

	for _, kw := range absenceKeywords {
		if strings.Contains(combined, kw) {
			return false
		}
	}
	for _, kw := range refusalKeywords {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}
