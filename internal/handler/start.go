package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/carelane/staffbot/internal/middleware"
)

const helpText = "I can answer questions about the healthcare staffing market:\n\n" +
	"• _\"What should we pay ICU RNs in Dallas?\"_ — rate recommendations\n" +
	"• _\"Where is demand for OR nurses heading in Texas?\"_ — demand forecasts\n" +
	"• _\"Which facilities are worth targeting in Florida?\"_ — lead analysis\n\n" +
	"Commands:\n" +
	"/role — answer from a sales, recruiter, operations or finance perspective\n" +
	"/profession — limit answers to Nursing, Allied, Locum/Tenens or Therapy\n" +
	"/reset — start a fresh conversation\n" +
	"/status — check the intelligence backend\n" +
	"/settings — show your current setup"

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	name := user.FirstName
	if name == "" {
		name = "there"
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text: fmt.Sprintf("👋 Hi %s! I'm the staffing intelligence assistant.\n\n%s",
			name, helpText),
		ParseMode: models.ParseModeMarkdownV1,
	})
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      helpText,
		ParseMode: models.ParseModeMarkdownV1,
	})
}
