package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelane/staffbot/internal/domain"
)

func TestConversationAppendAssignsIncreasingIDs(t *testing.T) {
	s := NewConversationService()

	var last int64
	for i := 0; i < 50; i++ {
		m := s.Append(1, domain.Message{Type: domain.MessageUser, Content: fmt.Sprintf("q%d", i)})
		require.Greater(t, m.ID, last)
		last = m.ID
	}
}

func TestConversationRoundTrip(t *testing.T) {
	s := NewConversationService()

	fa := &domain.ForecastAnalysis{Specialty: "ICU RN", Location: "TX"}
	appended := s.Append(7, domain.Message{
		Type:             domain.MessageBot,
		Content:          "here you go",
		ForecastAnalysis: fa,
		DetectedRole:     "sales",
	})

	got := s.Messages(7)
	require.Len(t, got, 1)
	assert.Equal(t, appended.ID, got[0].ID)
	assert.Equal(t, "here you go", got[0].Content)
	assert.Equal(t, "sales", got[0].DetectedRole)
	assert.Same(t, fa, got[0].ForecastAnalysis)
	assert.False(t, got[0].IsError())
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestConversationHistoryWindow(t *testing.T) {
	s := NewConversationService()

	for i := 0; i < 6; i++ {
		s.Append(1, domain.Message{Type: domain.MessageUser, Content: fmt.Sprintf("q%d", i)})
		s.Append(1, domain.Message{Type: domain.MessageBot, Content: fmt.Sprintf("a%d", i)})
	}

	history := s.History(1, 8)
	require.Len(t, history, 8)

	// Oldest-first, most recent 8 of 12 messages.
	assert.Equal(t, domain.HistoryEntry{Role: "user", Content: "q2"}, history[0])
	assert.Equal(t, domain.HistoryEntry{Role: "assistant", Content: "a5"}, history[7])

	for i, e := range history {
		if i%2 == 0 {
			assert.Equal(t, domain.RoleUser, e.Role)
		} else {
			assert.Equal(t, domain.RoleAssistant, e.Role)
		}
	}
}

func TestConversationHistoryNeverExceedsCap(t *testing.T) {
	s := NewConversationService()

	for i := 0; i < 100; i++ {
		s.Append(1, domain.Message{Type: domain.MessageUser, Content: fmt.Sprintf("m%d", i)})
		assert.LessOrEqual(t, len(s.History(1, 8)), 8)
	}
}

func TestConversationHistorySkipsFailedTurns(t *testing.T) {
	s := NewConversationService()

	s.Append(1, domain.Message{Type: domain.MessageUser, Content: "q"})
	s.Append(1, domain.Message{Type: domain.MessageBot, Content: "sorry", Err: "backend down"})
	s.Append(1, domain.Message{Type: domain.MessageUser, Content: "q again"})

	history := s.History(1, 8)
	require.Len(t, history, 2)
	assert.Equal(t, "q", history[0].Content)
	assert.Equal(t, "q again", history[1].Content)

	// The failed turn still lives in the conversation itself.
	assert.Equal(t, 3, s.Len(1))
}

func TestConversationChatsAreIsolated(t *testing.T) {
	s := NewConversationService()

	s.Append(1, domain.Message{Type: domain.MessageUser, Content: "chat one"})
	s.Append(2, domain.Message{Type: domain.MessageUser, Content: "chat two"})

	require.Len(t, s.Messages(1), 1)
	require.Len(t, s.Messages(2), 1)
	assert.Equal(t, "chat one", s.Messages(1)[0].Content)
	assert.Equal(t, "chat two", s.Messages(2)[0].Content)
}

func TestConversationReset(t *testing.T) {
	s := NewConversationService()

	s.Append(1, domain.Message{Type: domain.MessageUser, Content: "q"})
	require.Equal(t, 1, s.Len(1))

	s.Reset(1)
	assert.Equal(t, 0, s.Len(1))
	assert.Empty(t, s.History(1, 8))
}

func TestSingleFlightGate(t *testing.T) {
	s := NewConversationService()

	require.True(t, s.TryBegin(1))
	assert.True(t, s.InFlight(1))

	// Second submission while pending is refused.
	assert.False(t, s.TryBegin(1))

	// Other chats are unaffected.
	assert.True(t, s.TryBegin(2))

	s.End(1)
	assert.False(t, s.InFlight(1))
	assert.True(t, s.TryBegin(1))
}
