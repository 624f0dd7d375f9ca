package scoring

import (
	"sort"

	"carelog-go/internal/models"
)

// Alert flags one resident whose care or documentation score needs attention.
// The headline reason is the single highest-point component; ties break by
// the fixed priority refusal > gap > dependency, so identical data never
// reshuffles reasons between runs.
type Alert struct {
	ResidentID    int              `json:"residentId"`
	DomainName    string           `json:"domainName"`
	CareRisk      models.RiskLevel `json:"careRisk"`
	Documentation models.RiskLevel `json:"documentation"`
	Component     string           `json:"component"`
	Reason        string           `json:"reason"`
}

// RollupCell summarizes all residents of one care unit in one domain.
// "Worst wins": the cell's indicators equal the single most severe resident,
// never an average, so one at-risk resident can't hide among compliant ones.
type RollupCell struct {
	UnitName   string `json:"unitName"`
	DomainName string `json:"domainName"`

	WorstCareRisk      models.RiskLevel `json:"worstCareRisk"`
	WorstDocumentation models.RiskLevel `json:"worstDocumentation"`

	RedCount   int `json:"redCount"`
	AmberCount int `json:"amberCount"`
	GreenCount int `json:"greenCount"`

	Alerts []Alert `json:"alerts"`
}

// Rollup reduces per-resident analysis results for one (unit, domain) into a
// single cell. The reduction is associative and commutative: processing any
// partition of the results and merging gives the same cell as processing them
// all at once.
func Rollup(unitName, domainName string, results []AnalysisResult) RollupCell {
	cell := RollupCell{
		UnitName:           unitName,
		DomainName:         domainName,
		WorstCareRisk:      models.RiskNotApplicable,
		WorstDocumentation: models.RiskNotApplicable,
	}

	for _, r := range results {
		cell.WorstCareRisk = WorstLevel(cell.WorstCareRisk, r.CareRisk.RiskLevel)
		cell.WorstDocumentation = WorstLevel(cell.WorstDocumentation, r.Documentation.RiskLevel)

		switch r.CareRisk.RiskLevel {
		case models.RiskRed:
			cell.RedCount++
		case models.RiskAmber:
			cell.AmberCount++
		case models.RiskGreen:
			cell.GreenCount++
		}

		if alert, ok := alertFor(r); ok {
			cell.Alerts = append(cell.Alerts, alert)
		}
	}

	sortAlerts(cell.Alerts)
	return cell
}

// MergeCells combines two cells for the same (unit, domain). Used when a
// batch run shards residents across workers.
func MergeCells(a, b RollupCell) RollupCell {
	merged := RollupCell{
		UnitName:           a.UnitName,
		DomainName:         a.DomainName,
		WorstCareRisk:      WorstLevel(a.WorstCareRisk, b.WorstCareRisk),
		WorstDocumentation: WorstLevel(a.WorstDocumentation, b.WorstDocumentation),
		RedCount:           a.RedCount + b.RedCount,
		AmberCount:         a.AmberCount + b.AmberCount,
		GreenCount:         a.GreenCount + b.GreenCount,
	}
	merged.Alerts = append(merged.Alerts, a.Alerts...)
	merged.Alerts = append(merged.Alerts, b.Alerts...)
	sortAlerts(merged.Alerts)
	return merged
}

// alertFor builds an alert when either score is AMBER or RED. The headline
// component comes from the same worst-wins reduction used for cells; the
// components are already in priority order, so ties resolve to refusal, then
// gap, then dependency.
func alertFor(r AnalysisResult) (Alert, bool) {
	careFlagged := r.CareRisk.RiskLevel.SeverityRank() >= models.RiskAmber.SeverityRank()
	docFlagged := r.Documentation.RiskLevel.SeverityRank() >= models.RiskAmber.SeverityRank()
	if !careFlagged && !docFlagged {
		return Alert{}, false
	}

	headline, ok := WorstBy(r.CareRisk.Components, func(c ComponentScore) int { return c.Points })
	if !ok {
		return Alert{}, false
	}

	return Alert{
		ResidentID:    r.ResidentID,
		DomainName:    r.DomainName,
		CareRisk:      r.CareRisk.RiskLevel,
		Documentation: r.Documentation.RiskLevel,
		Component:     headline.Component,
		Reason:        headline.Explanation,
	}, true
}

// sortAlerts orders alerts most severe first, then by resident for a stable,
// partition-independent listing.
func sortAlerts(alerts []Alert) {
	sort.Slice(alerts, func(i, j int) bool {
		si := alertSeverity(alerts[i])
		sj := alertSeverity(alerts[j])
		if si != sj {
			return si > sj
		}
		return alerts[i].ResidentID < alerts[j].ResidentID
	})
}

func alertSeverity(a Alert) int {
	care := a.CareRisk.SeverityRank()
	doc := a.Documentation.SeverityRank()
	if doc > care {
		return doc
	}
	return care
}
