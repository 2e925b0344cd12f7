package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/carelane/staffbot/internal/config"
	"github.com/carelane/staffbot/internal/repository"
)

// RateLimit returns middleware that enforces a per-minute message cap
// per chat. Callback taps are not limited.
func RateLimit(queries *repository.Queries) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID

			count, err := queries.CheckAndIncrementRateLimit(ctx, chatID)
			if err != nil {
				// Fail open, the single-flight gate still applies.
				slog.Error("rate limit check failed", "error", err, "chat_id", chatID)
				next(ctx, b, update)
				return
			}

			if count > config.RateLimitPerMinute {
				slog.Debug("rate limited", "chat_id", chatID, "count", count)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Too many messages, give it a minute.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
