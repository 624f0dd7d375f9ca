package scoring

import (
	"fmt"

	"carelog-go/internal/models"
)

// DomainNotFoundError reports an analysis request against a domain name the
// registry does not know. Distinct from any scoring outcome: an unknown
// domain never silently defaults to a score.
type DomainNotFoundError struct {
	Name string
}

func (e *DomainNotFoundError) Error() string {
	return fmt.Sprintf("unknown care domain %q", e.Name)
}

// AnalysisResult is the composite outcome for one (resident, domain, window).
// The Care Risk Score and Documentation Compliance Score are independent,
// parallel signals: OverallRisk is always the CRS level, and the DCS is never
// blended into it. A resident can be GREEN-care/RED-documentation or the
// reverse.
type AnalysisResult struct {
	ResidentID    int              `json:"residentId"`
	DomainName    string           `json:"domainName"`
	WindowDays    int              `json:"windowDays"`
	CareRisk      CRSResult        `json:"careRisk"`
	Documentation DCSResult        `json:"documentation"`
	OverallRisk   models.RiskLevel `json:"overallRisk"`
}

// Engine runs analyses against a fixed domain registry. It holds no other
// state: every Analyze call is a pure function of its inputs and calls may
// run concurrently without coordination.
type Engine struct {
	registry *models.DomainRegistry
}

func NewEngine(registry *models.DomainRegistry) *Engine {
	return &Engine{registry: registry}
}

// Analyze scores one resident in one domain over a window of events. The
// events must already be scoped to that resident, domain and time range; the
// engine does not re-filter. CRS and DCS are computed independently so an
// insufficient-data fallback in one never affects the other.
func (e *Engine) Analyze(residentID int, domainName string, events []models.CareEvent, windowDays int) (AnalysisResult, error) {
	if windowDays <= 0 {
		return AnalysisResult{}, fmt.Errorf("window must be a positive number of days, got %d", windowDays)
	}

	cfg, ok := e.registry.Lookup(domainName)
	if !ok {
		return AnalysisResult{}, &DomainNotFoundError{Name: domainName}
	}

	crs := CalculateCRS(events, cfg)
	dcs := CalculateDCS(len(events), cfg, windowDays)

	return AnalysisResult{
		ResidentID:    residentID,
		DomainName:    domainName,
		WindowDays:    windowDays,
		CareRisk:      crs,
		Documentation: dcs,
		OverallRisk:   crs.RiskLevel,
	}, nil
}
