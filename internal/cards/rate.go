package cards

import (
	"fmt"
	"strings"

	"github.com/carelane/staffbot/internal/domain"
)

// Rate renders a pay rate recommendation card.
func Rate(r *domain.RateRecommendation) string {
	if r == nil {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("💵 *Rate Recommendation*")
	if r.Specialty != "" || r.Location != "" {
		sb.WriteString(fmt.Sprintf(": %s", strings.TrimSpace(strings.Trim(r.Specialty+" — "+r.Location, " —"))))
	}
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Recommended range: *%s – %s*\n", Money(r.RecommendedMin), Money(r.RecommendedMax)))
	sb.WriteString(fmt.Sprintf("Competitive floor: %s\n", Money(r.CompetitiveFloor)))
	sb.WriteString(fmt.Sprintf("Market average: %s\n", Money(r.MarketAverage)))

	if r.AvgHourlyPay != nil {
		sb.WriteString(fmt.Sprintf("Avg hourly pay: %s\n", Money(*r.AvgHourlyPay)))
	}
	if r.AvgWeeklyPay != nil {
		sb.WriteString(fmt.Sprintf("Avg weekly pay: %s\n", Money(*r.AvgWeeklyPay)))
	}
	if r.AvgBillRate != nil {
		sb.WriteString(fmt.Sprintf("Avg bill rate: %s\n", Money(*r.AvgBillRate)))
	}
	if r.RateType != "" {
		sb.WriteString(fmt.Sprintf("Rate type: %s\n", TitleLabel(r.RateType)))
	}
	sb.WriteString(fmt.Sprintf("Based on %d assignments", r.SampleSize))

	return sb.String()
}

// Vendor renders a matched vendor card.
func Vendor(v *domain.VendorInfo) string {
	if v == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏥 *%s*\n\n", v.VendorName))
	if v.Specialty != "" {
		sb.WriteString(fmt.Sprintf("Specialty: %s\n", v.Specialty))
	}
	if v.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", v.Location))
	}
	sb.WriteString(fmt.Sprintf("Average rate: %s\n", Money(v.AverageRate)))
	sb.WriteString(fmt.Sprintf("Assignments: %d", v.TotalAssignments))
	return sb.String()
}
