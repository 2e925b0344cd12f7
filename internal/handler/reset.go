package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/carelane/staffbot/internal/telegram"
)

func (h *Handler) handleReset(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	chatID := update.Message.Chat.ID
	count := h.conversations.Len(chatID)
	if count == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Nothing to reset, we haven't talked yet.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("🗑 Drop the current conversation (%d messages)?", count),
		ReplyMarkup: tg.InlineKeyboard(
			tg.ButtonRow(tg.InlineButton("Yes, start fresh", "reset_confirm")),
		),
	})
}

func (h *Handler) handleResetConfirm(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil || update.CallbackQuery.Message.Message == nil {
		return
	}

	msg := update.CallbackQuery.Message.Message
	h.conversations.Reset(msg.Chat.ID)
	h.answerCallback(ctx, b, update, "")

	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      "🗑 Conversation cleared. Ask me anything.",
	})
}
