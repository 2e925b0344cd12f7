package domain

import "time"

type MessageType string

const (
	MessageUser MessageType = "user"
	MessageBot  MessageType = "bot"
)

// History roles as the intelligence backend expects them.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn. Messages are immutable once
// appended to a conversation and are identified by a monotonically
// increasing creation-time id.
type Message struct {
	ID        int64
	Type      MessageType
	Content   string
	Timestamp time.Time

	// Err holds the user-visible failure text for turns that did not
	// complete. Empty for successful turns.
	Err string

	// Optional structured payloads carried on bot turns. A nil payload
	// means the corresponding card is not rendered.
	ForecastAnalysis   *ForecastAnalysis
	RateRecommendation *RateRecommendation
	LeadAnalysis       *LeadAnalysis
	VendorInfo         *VendorInfo

	DetectedRole        string
	ExtractedParameters map[string]any
}

func (m *Message) IsError() bool {
	return m.Err != ""
}

// HistoryEntry is one role/content pair of the context window sent to
// the backend with each request.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
