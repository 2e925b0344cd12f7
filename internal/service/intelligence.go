package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/carelane/staffbot/internal/config"
	"github.com/carelane/staffbot/internal/domain"
)

// IntelligenceService talks to the staffing intelligence backend over
// HTTP. One POST per chat turn, no automatic retry.
type IntelligenceService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	status     *StatusCache
}

func NewIntelligenceService(baseURL, apiKey string) *IntelligenceService {
	return &IntelligenceService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: config.RequestTimeout},
		status:     NewStatusCache(config.StatusCacheDuration),
	}
}

// ChatQuery is the outbound request body. Role and profession are nil
// for the "general" / "all" defaults. RequestID travels as a header,
// not in the body.
type ChatQuery struct {
	RequestID           string                `json:"-"`
	Message             string                `json:"message"`
	UserRole            *string               `json:"user_role"`
	Profession          *string               `json:"profession,omitempty"`
	ConversationHistory []domain.HistoryEntry `json:"conversation_history"`
}

// ChatResult is the structured backend reply. Every field beyond
// Response is optional; absence means the matching card is omitted.
type ChatResult struct {
	Response            string                     `json:"response"`
	RateRecommendation  *domain.RateRecommendation `json:"rate_recommendation,omitempty"`
	VendorInfo          *domain.VendorInfo         `json:"vendor_info,omitempty"`
	LeadAnalysis        *domain.LeadAnalysis       `json:"lead_analysis,omitempty"`
	ForecastAnalysis    *domain.ForecastAnalysis   `json:"forecast_analysis,omitempty"`
	ExtractedParameters map[string]any             `json:"extracted_parameters,omitempty"`
	RequiresData        bool                       `json:"requires_data,omitempty"`
	UserRoleDetected    string                     `json:"user_role_detected,omitempty"`
}

// Query sends one chat turn to the backend and returns its structured
// reply. The history slice must already be capped by the caller.
func (s *IntelligenceService) Query(ctx context.Context, query ChatQuery) (*ChatResult, error) {
	if strings.TrimSpace(query.Message) == "" {
		return nil, domain.ErrEmptyMessage
	}
	if query.ConversationHistory == nil {
		query.ConversationHistory = []domain.HistoryEntry{}
	}

	payload, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := query.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &domain.StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var result ChatResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	return &result, nil
}

// Health probes the backend's health endpoint, at most once per cache
// window.
func (s *IntelligenceService) Health(ctx context.Context) error {
	if ok, fresh := s.status.Get(); fresh {
		if ok {
			return nil
		}
		return domain.ErrBackendUnhealthy
	}

	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.status.Set(false)
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		s.status.Set(false)
		return &domain.StatusError{Code: resp.StatusCode}
	}

	s.status.Set(true)
	return nil
}
