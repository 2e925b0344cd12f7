package handler

import (
	"context"
	"time"

	"github.com/go-telegram/bot"

	"github.com/carelane/staffbot/internal/config"
	"github.com/carelane/staffbot/internal/domain"
	"github.com/carelane/staffbot/internal/repository"
	"github.com/carelane/staffbot/internal/service"
)

// UserStore persists user preference changes.
type UserStore interface {
	UpdateLastInteraction(ctx context.Context, user *domain.User) error
	SetRole(ctx context.Context, user *domain.User, role string) error
	SetProfession(ctx context.Context, user *domain.User, profession string) error
}

// AuditLog records request metadata and serves usage metrics.
type AuditLog interface {
	LogRequest(ctx context.Context, e repository.RequestLogEntry) error
	GetUsageStats(ctx context.Context, since time.Time) (*repository.UsageStats, error)
	CountUsers(ctx context.Context) (int64, error)
}

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot           *bot.Bot
	cfg           *config.Config
	userService   UserStore
	conversations *service.ConversationService
	intelligence  *service.IntelligenceService
	queries       AuditLog
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot           *bot.Bot
	Cfg           *config.Config
	UserService   UserStore
	Conversations *service.ConversationService
	Intelligence  *service.IntelligenceService
	Queries       AuditLog
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:           deps.Bot,
		cfg:           deps.Cfg,
		userService:   deps.UserService,
		conversations: deps.Conversations,
		intelligence:  deps.Intelligence,
		queries:       deps.Queries,
	}
}
