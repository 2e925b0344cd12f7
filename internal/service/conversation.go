package service

import (
	"sync"
	"time"

	"github.com/carelane/staffbot/internal/domain"
)

// ConversationService owns the in-memory, per-chat conversation state.
// Messages live for the process lifetime only and are never persisted.
// All mutation goes through Append and Reset.
type ConversationService struct {
	mu       sync.Mutex
	chats    map[int64]*conversation
	inFlight map[int64]bool
	lastID   int64
}

type conversation struct {
	messages []domain.Message
}

func NewConversationService() *ConversationService {
	return &ConversationService{
		chats:    make(map[int64]*conversation),
		inFlight: make(map[int64]bool),
	}
}

// Append adds a message to the end of the chat's conversation and
// returns it with its id and timestamp filled in. Ids are creation-time
// clock readings, bumped when two appends land on the same millisecond
// so ordering stays strict.
func (s *ConversationService) Append(chatID int64, msg domain.Message) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	id := msg.Timestamp.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	msg.ID = id

	c := s.chats[chatID]
	if c == nil {
		c = &conversation{}
		s.chats[chatID] = c
	}
	c.messages = append(c.messages, msg)
	return msg
}

// Messages returns a copy of the chat's conversation in append order.
func (s *ConversationService) Messages(chatID int64) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.chats[chatID]
	if c == nil {
		return nil
	}
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// History derives the context window for the backend: the most recent
// cap role/content pairs, oldest first. Failed turns carry no content
// the backend should condition on and are skipped.
func (s *ConversationService) History(chatID int64, cap int) []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.chats[chatID]
	if c == nil || cap <= 0 {
		return nil
	}

	var entries []domain.HistoryEntry
	for _, m := range c.messages {
		if m.IsError() {
			continue
		}
		role := domain.RoleUser
		if m.Type == domain.MessageBot {
			role = domain.RoleAssistant
		}
		entries = append(entries, domain.HistoryEntry{Role: role, Content: m.Content})
	}
	if len(entries) > cap {
		entries = entries[len(entries)-cap:]
	}
	return entries
}

// Reset drops the chat's conversation.
func (s *ConversationService) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chats, chatID)
}

// Len reports how many messages the chat's conversation holds.
func (s *ConversationService) Len(chatID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.chats[chatID]
	if c == nil {
		return 0
	}
	return len(c.messages)
}

// TryBegin claims the chat's single-flight slot. It returns false when
// a request is already pending, in which case the submission is dropped.
func (s *ConversationService) TryBegin(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[chatID] {
		return false
	}
	s.inFlight[chatID] = true
	return true
}

// End releases the chat's single-flight slot. Callers defer it so the
// slot is freed on every exit path.
func (s *ConversationService) End(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, chatID)
}

// InFlight reports whether a request is pending for the chat.
func (s *ConversationService) InFlight(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[chatID]
}
