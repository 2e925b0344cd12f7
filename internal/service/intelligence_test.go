package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelane/staffbot/internal/domain"
)

func TestQuerySendsExpectedBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"response":"hello"}`))
	}))
	defer srv.Close()

	role := "sales"
	svc := NewIntelligenceService(srv.URL, "")
	result, err := svc.Query(context.Background(), ChatQuery{
		Message:  "what do ICU RNs make in TX?",
		UserRole: &role,
		ConversationHistory: []domain.HistoryEntry{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Response)

	assert.Equal(t, "what do ICU RNs make in TX?", got["message"])
	assert.Equal(t, "sales", got["user_role"])
	_, hasProfession := got["profession"]
	assert.False(t, hasProfession, "nil profession should be omitted")
	assert.Len(t, got["conversation_history"], 2)
}

func TestQueryNullRoleForGeneral(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		role, present := body["user_role"]
		assert.True(t, present)
		assert.Nil(t, role)
		w.Write([]byte(`{"response":"ok"}`))
	}))
	defer srv.Close()

	svc := NewIntelligenceService(srv.URL, "")
	_, err := svc.Query(context.Background(), ChatQuery{Message: "hi"})
	require.NoError(t, err)
}

func TestQueryParsesStructuredPayloads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"response": "demand is rising",
			"user_role_detected": "sales",
			"forecast_analysis": {
				"specialty": "ICU RN",
				"location": "Texas",
				"dual_forecast": true,
				"forecast_insights": {
					"current_value": 2210,
					"trend_direction": "increasing",
					"confidence_level": "high",
					"accuracy_mape": 8.5,
					"forecasts": {"52_weeks": 2400, "4_weeks": 2250},
					"growth_rates": {"52_weeks": 8.6, "4_weeks": 1.8}
				},
				"national_forecast_insights": {
					"current_value": 2100,
					"forecasts": {"4_weeks": 2120},
					"growth_rates": {"4_weeks": 0.9}
				},
				"business_recommendations": {"sales": ["Push travel contracts"], "finance": []}
			}
		}`))
	}))
	defer srv.Close()

	svc := NewIntelligenceService(srv.URL, "")
	result, err := svc.Query(context.Background(), ChatQuery{Message: "forecast ICU RNs in Texas"})
	require.NoError(t, err)

	fa := result.ForecastAnalysis
	require.NotNil(t, fa)
	assert.True(t, fa.DualForecast)
	require.NotNil(t, fa.NationalForecastInsights)

	// Emission order is preserved by the decoder.
	require.Len(t, fa.ForecastInsights.Forecasts, 2)
	assert.Equal(t, "52_weeks", fa.ForecastInsights.Forecasts[0].Key)
	assert.Equal(t, "4_weeks", fa.ForecastInsights.Forecasts[1].Key)

	require.Len(t, fa.BusinessRecommendations, 2)
	assert.Equal(t, "sales", fa.BusinessRecommendations[0].Key)
	assert.Empty(t, fa.BusinessRecommendations[1].Items)

	assert.Equal(t, "sales", result.UserRoleDetected)
	assert.Nil(t, result.RateRecommendation)
	assert.Nil(t, result.LeadAnalysis)
}

func TestQueryStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewIntelligenceService(srv.URL, "")
	_, err := svc.Query(context.Background(), ChatQuery{Message: "hi"})

	var statusErr *domain.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestQueryMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	svc := NewIntelligenceService(srv.URL, "")
	_, err := svc.Query(context.Background(), ChatQuery{Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestQueryNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	svc := NewIntelligenceService(srv.URL, "")
	_, err := svc.Query(context.Background(), ChatQuery{Message: "hi"})
	require.Error(t, err)

	var statusErr *domain.StatusError
	assert.False(t, errors.As(err, &statusErr), "network failures are not status errors")
	assert.NotErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestQueryRejectsEmptyMessage(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewIntelligenceService(srv.URL, "")
	_, err := svc.Query(context.Background(), ChatQuery{Message: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.False(t, called, "no request may be issued for empty input")
}

func TestHealthUsesCache(t *testing.T) {
	probes := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		probes++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewIntelligenceService(srv.URL, "")
	require.NoError(t, svc.Health(context.Background()))
	require.NoError(t, svc.Health(context.Background()))
	assert.Equal(t, 1, probes, "second probe within the cache window hits the cache")
}

func TestStatusCacheExpiry(t *testing.T) {
	c := NewStatusCache(10 * time.Millisecond)

	_, fresh := c.Get()
	assert.False(t, fresh)

	c.Set(true)
	healthy, fresh := c.Get()
	assert.True(t, healthy)
	assert.True(t, fresh)

	time.Sleep(20 * time.Millisecond)
	_, fresh = c.Get()
	assert.False(t, fresh)
}
