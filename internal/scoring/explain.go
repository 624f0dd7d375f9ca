package scoring

import (
	"fmt"
	"strings"

	"carelog-go/internal/models"
)

// FormatCRSExplanation renders the full Care Risk Score justification. It is
// a pure formatter over already-computed component scores, kept separate from
// the scoring arithmetic so each can be tested on its own. Components are
// rendered in their fixed order, so identical inputs produce byte-identical
// output.
func FormatCRSExplanation(components []ComponentScore, total int, level models.RiskLevel) string {
	parts := make([]string, 0, len(components)+1)
	for _, c := range components {
		parts = append(parts, fmt.Sprintf("%s: %s [%d pts]", c.Component, c.Explanation, c.Points))
	}
	parts = append(parts, fmt.Sprintf("total %d points = %s", total, level))
	return strings.Join(parts, "; ")
}
