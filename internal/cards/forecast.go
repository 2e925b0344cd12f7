package cards

import (
	"fmt"
	"strings"

	"github.com/carelane/staffbot/internal/domain"
)

// Forecast renders a ForecastAnalysis as Telegram markdown. Returns an
// empty string when there is nothing to show.
func Forecast(fa *domain.ForecastAnalysis) string {
	if fa == nil || fa.ForecastInsights == nil {
		return ""
	}

	var sb strings.Builder

	title := "Demand Forecast"
	if fa.Specialty != "" {
		title = fmt.Sprintf("%s Forecast", fa.Specialty)
	}
	sb.WriteString(fmt.Sprintf("📊 *%s*", title))
	if fa.Location != "" {
		sb.WriteString(fmt.Sprintf(" — %s", fa.Location))
	}
	sb.WriteString("\n")

	if fa.TimeHorizon != "" {
		sb.WriteString(fmt.Sprintf("Horizon: %s\n", fa.TimeHorizon))
	}
	if fa.DataSource != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", fa.DataSource))
	}

	if fa.IsMultiStateFallback {
		sb.WriteString("\n⚠️ Not enough local data")
		if fa.RequestedLocation != "" {
			sb.WriteString(fmt.Sprintf(" for %s", fa.RequestedLocation))
		}
		sb.WriteString(", showing the closest available view.")
		if fa.FallbackReason != "" {
			sb.WriteString(fmt.Sprintf("\n_%s_", fa.FallbackReason))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	writeInsights(&sb, fa.ForecastInsights)

	if fa.DualForecast && fa.NationalForecastInsights != nil {
		sb.WriteString("\n— — — — — — — — — —\n")
		sb.WriteString("🇺🇸 *National comparison*\n\n")
		writeInsights(&sb, fa.NationalForecastInsights)
	}

	writeRecommendations(&sb, fa.BusinessRecommendations)

	return strings.TrimRight(sb.String(), "\n")
}

func writeInsights(sb *strings.Builder, in *domain.ForecastInsights) {
	metric := in.TargetMetric
	if metric == "" {
		metric = "current value"
	}
	sb.WriteString(fmt.Sprintf("Current %s: *%s*\n", strings.ToLower(metric), Currency(in.CurrentValue)))
	sb.WriteString(fmt.Sprintf("%s Trend: *%s*\n", trendIcon(in.TrendDirection), Trend(in.TrendDirection)))
	sb.WriteString(fmt.Sprintf("%s Confidence: %s\n", confidenceIcon(in.ConfidenceLevel), TitleLabel(confidenceOrDefault(in.ConfidenceLevel))))
	sb.WriteString(fmt.Sprintf("🎯 Accuracy: %s\n", Accuracy(in.AccuracyMAPE)))
	if in.ModelUsed != "" {
		sb.WriteString(fmt.Sprintf("🤖 Model: %s\n", in.ModelUsed))
	}

	if len(in.Forecasts) == 0 {
		return
	}
	sb.WriteString("\n*Outlook*\n")
	for _, kv := range sortPeriods(in.Forecasts) {
		line := fmt.Sprintf("• %s: %s", periodLabel(kv.Key), Currency(kv.Value))
		if growth, ok := in.GrowthRates.Get(kv.Key); ok {
			line += fmt.Sprintf(" (%s)", Growth(growth))
		}
		sb.WriteString(line + "\n")
	}
}

func confidenceOrDefault(level string) string {
	if strings.TrimSpace(level) == "" {
		return "unknown"
	}
	return level
}

func writeRecommendations(sb *strings.Builder, recs domain.KeyedStringLists) {
	wroteHeader := false
	for _, entry := range recs {
		if len(entry.Items) == 0 {
			continue
		}
		if !wroteHeader {
			sb.WriteString("\n💡 *Recommendations*\n")
			wroteHeader = true
		}
		sb.WriteString(fmt.Sprintf("*%s*\n", TitleLabel(entry.Key)))
		for _, item := range entry.Items {
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
	}
}
