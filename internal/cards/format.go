// Package cards turns structured backend payloads into Telegram card
// text. Everything here is pure formatting: no side effects, no
// panics, malformed values degrade to placeholder dashes.
package cards

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/carelane/staffbot/internal/domain"
)

const placeholder = "—"

var printer = message.NewPrinter(language.English)

// Currency renders a whole-unit, comma-grouped dollar amount. Anything
// that is not a finite number renders as a placeholder.
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return placeholder
	}
	return printer.Sprintf("$%.0f", v)
}

// Money renders rate figures with cents. Rounding goes through decimal
// so float artifacts don't leak into displayed pay rates.
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return placeholder
	}
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return printer.Sprintf("$%.2f", rounded)
}

// Growth renders a signed percentage, one decimal, explicit plus sign
// for positive values.
func Growth(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return placeholder
	}
	return fmt.Sprintf("%+.1f%%", v)
}

// Accuracy converts a MAPE figure into display accuracy (100 - mape).
func Accuracy(mape float64) string {
	if math.IsNaN(mape) || math.IsInf(mape, 0) {
		return placeholder
	}
	return fmt.Sprintf("%.1f%%", 100-mape)
}

// Trend upper-cases the backend's trend label, defaulting to STABLE.
func Trend(direction string) string {
	if strings.TrimSpace(direction) == "" {
		return "STABLE"
	}
	return strings.ToUpper(direction)
}

func trendIcon(direction string) string {
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "increasing":
		return "📈"
	case "decreasing":
		return "📉"
	default:
		return "➡️"
	}
}

func confidenceIcon(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "high":
		return "🟢"
	case "medium":
		return "🟡"
	case "low":
		return "🔴"
	default:
		return "⚪"
	}
}

// TitleLabel renders a role or metric key for display. The caser is
// built per call, cases.Caser is not safe for concurrent use.
func TitleLabel(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// periodPriority fixes the display order of forecast horizons. Unknown
// keys sort after all known ones, keeping their emission order.
var periodPriority = map[string]int{
	"4_weeks":  1,
	"12_weeks": 2,
	"26_weeks": 3,
	"52_weeks": 4,
}

func priorityOf(key string) int {
	if p, ok := periodPriority[key]; ok {
		return p
	}
	return 99
}

func sortPeriods(periods domain.KeyedFloats) domain.KeyedFloats {
	out := make(domain.KeyedFloats, len(periods))
	copy(out, periods)
	sort.SliceStable(out, func(i, j int) bool {
		return priorityOf(out[i].Key) < priorityOf(out[j].Key)
	})
	return out
}

func periodLabel(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}
