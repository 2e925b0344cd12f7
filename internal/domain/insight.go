package domain

// ForecastAnalysis is the forecast payload attached to a chat response.
// Field absence means the matching part of the card is omitted.
type ForecastAnalysis struct {
	Specialty   string `json:"specialty"`
	Location    string `json:"location"`
	TimeHorizon string `json:"time_horizon"`
	DataSource  string `json:"data_source"`

	DualForecast             bool              `json:"dual_forecast"`
	ForecastInsights         *ForecastInsights `json:"forecast_insights"`
	NationalForecastInsights *ForecastInsights `json:"national_forecast_insights,omitempty"`

	// Keyed by role name, rendered in the order the backend emitted them.
	BusinessRecommendations KeyedStringLists `json:"business_recommendations"`

	// Multi-state fallback mode, used when the requested location has
	// too little data for a localized forecast.
	IsMultiStateFallback bool   `json:"is_multi_state_fallback,omitempty"`
	FallbackReason       string `json:"fallback_reason,omitempty"`
	RequestedLocation    string `json:"requested_location,omitempty"`
}

// ForecastInsights is one prediction bundle from the forecasting service.
type ForecastInsights struct {
	ModelUsed       string      `json:"model_used"`
	TargetMetric    string      `json:"target_metric"`
	CurrentValue    float64     `json:"current_value"`
	TrendDirection  string      `json:"trend_direction"`
	ConfidenceLevel string      `json:"confidence_level"`
	AccuracyMAPE    float64     `json:"accuracy_mape"`
	ProcessingTime  float64     `json:"processing_time"`
	Forecasts       KeyedFloats `json:"forecasts"`
	GrowthRates     KeyedFloats `json:"growth_rates"`
}

// RateRecommendation is the pay/bill rate payload.
type RateRecommendation struct {
	Specialty        string   `json:"specialty"`
	Location         string   `json:"location"`
	RecommendedMin   float64  `json:"recommended_min"`
	RecommendedMax   float64  `json:"recommended_max"`
	CompetitiveFloor float64  `json:"competitive_floor"`
	MarketAverage    float64  `json:"market_average"`
	SampleSize       int      `json:"sample_size"`
	AvgWeeklyPay     *float64 `json:"avg_weekly_pay,omitempty"`
	AvgHourlyPay     *float64 `json:"avg_hourly_pay,omitempty"`
	AvgBillRate      *float64 `json:"avg_bill_rate,omitempty"`
	RateType         string   `json:"rate_type,omitempty"`
}

// LeadAnalysis is the sales-lead payload.
type LeadAnalysis struct {
	Opportunities      []map[string]any `json:"opportunities"`
	TotalOpportunities int              `json:"total_opportunities"`
	EstimatedValue     float64          `json:"estimated_value"`
}

// VendorInfo describes a single vendor the backend matched to the query.
type VendorInfo struct {
	VendorName       string  `json:"vendor_name"`
	Specialty        string  `json:"specialty"`
	Location         string  `json:"location"`
	AverageRate      float64 `json:"average_rate"`
	TotalAssignments int     `json:"total_assignments"`
}
