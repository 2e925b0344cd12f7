package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/role", bot.MatchTypePrefix, h.handleRole)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/profession", bot.MatchTypePrefix, h.handleProfession)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/settings", bot.MatchTypePrefix, h.handleSettings)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/reset", bot.MatchTypePrefix, h.handleReset)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypePrefix, h.handleStatus)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stats", bot.MatchTypePrefix, h.handleStats)

	// Selector callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "role_", bot.MatchTypePrefix, h.handleRoleSelect)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "prof_", bot.MatchTypePrefix, h.handleProfessionSelect)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "reset_confirm", bot.MatchTypeExact, h.handleResetConfirm)
}

// answerCallback acknowledges a callback query so the client stops
// showing the progress spinner.
func (h *Handler) answerCallback(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
		Text:            text,
	})
}
