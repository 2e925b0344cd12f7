package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/carelane/staffbot/internal/domain"
	"github.com/carelane/staffbot/internal/middleware"
)

func (h *Handler) handleStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := h.intelligence.Health(probeCtx); err != nil {
		slog.Warn("backend health check failed", "error", err)

		text := "🔴 The intelligence backend is not reachable."
		var statusErr *domain.StatusError
		if errors.As(err, &statusErr) {
			text = fmt.Sprintf("🔴 The intelligence backend answered with status %d.", statusErr.Code)
		} else if errors.Is(err, domain.ErrBackendUnhealthy) {
			text = "🔴 The intelligence backend reported itself unhealthy."
		}
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "🟢 The intelligence backend is up.",
	})
}

func (h *Handler) handleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil || !user.IsAdmin {
		return
	}

	chatID := update.Message.Chat.ID
	since := time.Now().AddDate(0, 0, -7)

	stats, err := h.queries.GetUsageStats(ctx, since)
	if err != nil {
		slog.Error("usage stats", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Couldn't load usage stats.",
		})
		return
	}

	users, err := h.queries.CountUsers(ctx)
	if err != nil {
		slog.Error("count users", "error", err)
	}

	text := fmt.Sprintf(
		"📈 *Last 7 days*\n\n"+
			"Users: *%d*\n"+
			"Requests: *%d* (%d failed)\n"+
			"Forecast cards: *%d*\n"+
			"Rate cards: *%d*\n"+
			"Lead cards: *%d*\n"+
			"Avg latency: *%.0f ms*",
		users,
		stats.TotalRequests, stats.FailedRequests,
		stats.ForecastCards, stats.RateCards, stats.LeadCards,
		stats.AvgLatencyMs,
	)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
}
