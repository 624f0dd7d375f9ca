package scoring

import "carelog-go/internal/models"

// Component names, in the fixed order they contribute to the Care Risk Score
// and the fixed priority used to break ties when picking a headline reason.
const (
	ComponentRefusal    = "refusal"
	ComponentGap        = "gap"
	ComponentDependency = "dependency"
)

// ComponentScore is the output of one scorer: a bounded point value, the
// qualitative bucket it fell in, and a one-sentence justification that
// references the concrete evidence.
type ComponentScore struct {
	Component   string           `json:"component"`
	Points      int              `json:"points"`
	Label       models.RiskLevel `json:"label"`
	Explanation string           `json:"explanation"`
}
