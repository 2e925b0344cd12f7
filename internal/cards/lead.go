package cards

import (
	"fmt"
	"strings"

	"github.com/carelane/staffbot/internal/domain"
)

const maxOpportunityRows = 5

// Lead renders a sales lead analysis card. Opportunity entries are
// loosely shaped maps from the backend, so field lookup is defensive.
func Lead(l *domain.LeadAnalysis) string {
	if l == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("🎯 *Lead Analysis*\n\n")
	sb.WriteString(fmt.Sprintf("Opportunities found: *%d*\n", l.TotalOpportunities))
	sb.WriteString(fmt.Sprintf("Estimated value: *%s*\n", Currency(l.EstimatedValue)))

	var lines []string
	for _, opp := range l.Opportunities {
		if line := opportunityLine(opp); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 0 {
		sb.WriteString("\n*Top opportunities*\n")
	}
	for i, line := range lines {
		if i == maxOpportunityRows {
			sb.WriteString(fmt.Sprintf("…and %d more\n", len(lines)-maxOpportunityRows))
			break
		}
		sb.WriteString("• " + line + "\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func opportunityLine(opp map[string]any) string {
	name := stringField(opp, "facility", "name", "client", "vendor_name")
	location := stringField(opp, "location", "state", "city")
	specialty := stringField(opp, "specialty")

	parts := make([]string, 0, 3)
	if name != "" {
		parts = append(parts, name)
	}
	if specialty != "" {
		parts = append(parts, specialty)
	}
	if location != "" {
		parts = append(parts, location)
	}
	if len(parts) == 0 {
		return ""
	}

	line := strings.Join(parts, " — ")
	if value, ok := floatField(opp, "estimated_value", "value"); ok {
		line += fmt.Sprintf(" (%s)", Currency(value))
	}
	return line
}

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func floatField(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		}
	}
	return 0, false
}
