package repository

import (
	"carelog-go/internal/database"
	"carelog-go/internal/models"
)

// UpsertDomainScore writes one analysis result, replacing any previous score
// for the same (resident, domain, window). The conflict target matches the
// unique index created at migration time.
func UpsertDomainScore(score models.DomainScore) error {
	query := `INSERT INTO domain_scores (
			resident_id, domain_id, window_start, window_end, window_days,
			crs_level, crs_total, refusal_points, gap_points, dependency_points, crs_explanation,
			refusal_count, max_gap_hours, dependency_trend,
			dcs_level, compliance_percentage, actual_entries, expected_entries, dcs_explanation,
			overall_risk, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
		ON CONFLICT (resident_id, domain_id, window_start, window_end)
		DO UPDATE SET
			window_days = EXCLUDED.window_days,
			crs_level = EXCLUDED.crs_level,
			crs_total = EXCLUDED.crs_total,
			refusal_points = EXCLUDED.refusal_points,
			gap_points = EXCLUDED.gap_points,
			dependency_points = EXCLUDED.dependency_points,
			crs_explanation = EXCLUDED.crs_explanation,
			refusal_count = EXCLUDED.refusal_count,
			max_gap_hours = EXCLUDED.max_gap_hours,
			dependency_trend = EXCLUDED.dependency_trend,
			dcs_level = EXCLUDED.dcs_level,
			compliance_percentage = EXCLUDED.compliance_percentage,
			actual_entries = EXCLUDED.actual_entries,
			expected_entries = EXCLUDED.expected_entries,
			dcs_explanation = EXCLUDED.dcs_explanation,
			overall_risk = EXCLUDED.overall_risk,
			updated_at = NOW()`

	return database.DB.Exec(query,
		score.ResidentID, score.DomainID, score.WindowStart, score.WindowEnd, score.WindowDays,
		score.CRSLevel, score.CRSTotal, score.RefusalPoints, score.GapPoints, score.DependencyPoints, score.CRSExplanation,
		score.RefusalCount, score.MaxGapHours, score.DependencyTrend,
		score.DCSLevel, score.CompliancePercentage, score.ActualEntries, score.ExpectedEntries, score.DCSExplanation,
		score.OverallRisk,
	).Error
}

// ScoreHistoryPoint is one stored score for trend charts.
type ScoreHistoryPoint struct {
	WindowEnd   string  `json:"windowEnd"`
	CRSLevel    string  `json:"crsLevel"`
	CRSTotal    int     `json:"crsTotal"`
	DCSLevel    string  `json:"dcsLevel"`
	DCSPercent  float64 `json:"dcsPercent"`
	OverallRisk string  `json:"overallRisk"`
}

// GetScoreHistory returns stored scores for one resident/domain/window
// length, newest first.
func GetScoreHistory(residentID, domainID, windowDays, limit int) ([]ScoreHistoryPoint, error) {
	var points []ScoreHistoryPoint
	query := `SELECT
			to_char(window_end, 'YYYY-MM-DD') AS window_end,
			crs_level, crs_total, dcs_level,
			compliance_percentage AS dcs_percent,
			overall_risk
		FROM domain_scores
		WHERE resident_id = ? AND domain_id = ? AND window_days = ?
		ORDER BY window_end DESC
		LIMIT ?`
	err := database.DB.Raw(query, residentID, domainID, windowDays, limit).Scan(&points).Error
	return points, err
}
