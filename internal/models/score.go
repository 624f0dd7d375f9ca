package models

import "time"

// DomainScore is one persisted analysis result, uniquely keyed by
// (resident, domain, window). Batch recalculation upserts onto that key.
type DomainScore struct {
	ID          int `gorm:"primaryKey"`
	ResidentID  int
	DomainID    int
	WindowStart time.Time
	WindowEnd   time.Time
	WindowDays  int

	CRSLevel         RiskLevel
	CRSTotal         int
	RefusalPoints    int
	GapPoints        int
	DependencyPoints int
	CRSExplanation   string

	RefusalCount    int
	MaxGapHours     *float64 // nil when fewer than 2 events
	DependencyTrend string

	DCSLevel             RiskLevel
	CompliancePercentage float64
	ActualEntries        int
	ExpectedEntries      float64
	DCSExplanation       string

	OverallRisk RiskLevel

	CreatedAt time.Time
	UpdatedAt time.Time
}
