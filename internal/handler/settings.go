package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/carelane/staffbot/internal/middleware"
	tg "github.com/carelane/staffbot/internal/telegram"
)

// Selector values are carried in callback data as short codes. The
// profession values themselves can't be embedded verbatim
// ("Locum/Tenens" contains a separator-hostile slash).
var (
	roleByCode = map[string]string{
		"general":    "",
		"sales":      "sales",
		"recruiter":  "recruiter",
		"operations": "operations",
		"finance":    "finance",
	}
	professionByCode = map[string]string{
		"all":     "",
		"nursing": "Nursing",
		"allied":  "Allied",
		"locum":   "Locum/Tenens",
		"therapy": "Therapy",
	}
)

func roleLabel(role string) string {
	if role == "" {
		return "General"
	}
	return strings.ToUpper(role[:1]) + role[1:]
}

func professionLabel(profession string) string {
	if profession == "" {
		return "All professions"
	}
	return profession
}

func (h *Handler) handleRole(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	rows := [][]models.InlineKeyboardButton{
		tg.ButtonRow(tg.InlineButton(checkmark(user.Role == "")+"General", "role_general")),
		tg.ButtonRow(
			tg.InlineButton(checkmark(user.Role == "sales")+"Sales", "role_sales"),
			tg.InlineButton(checkmark(user.Role == "recruiter")+"Recruiter", "role_recruiter"),
		),
		tg.ButtonRow(
			tg.InlineButton(checkmark(user.Role == "operations")+"Operations", "role_operations"),
			tg.InlineButton(checkmark(user.Role == "finance")+"Finance", "role_finance"),
		),
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "👤 Whose perspective should I answer from?",
		ReplyMarkup: tg.InlineKeyboard(rows...),
	})
}

func (h *Handler) handleRoleSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	user := middleware.GetUser(ctx)
	if user == nil || update.CallbackQuery == nil {
		return
	}

	code := strings.TrimPrefix(update.CallbackQuery.Data, "role_")
	role, ok := roleByCode[code]
	if !ok {
		h.answerCallback(ctx, b, update, "Unknown role")
		return
	}

	if err := h.userService.SetRole(ctx, user, role); err != nil {
		slog.Error("set role", "error", err, "user_id", user.ID)
		h.answerCallback(ctx, b, update, "Couldn't save that, try again")
		return
	}

	h.answerCallback(ctx, b, update, "")
	if update.CallbackQuery.Message.Message != nil {
		msg := update.CallbackQuery.Message.Message
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    msg.Chat.ID,
			MessageID: msg.ID,
			Text:      fmt.Sprintf("👤 Perspective set to %s.", roleLabel(role)),
		})
	}
}

func (h *Handler) handleProfession(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	rows := [][]models.InlineKeyboardButton{
		tg.ButtonRow(tg.InlineButton(checkmark(user.Profession == "")+"All professions", "prof_all")),
		tg.ButtonRow(
			tg.InlineButton(checkmark(user.Profession == "Nursing")+"Nursing", "prof_nursing"),
			tg.InlineButton(checkmark(user.Profession == "Allied")+"Allied", "prof_allied"),
		),
		tg.ButtonRow(
			tg.InlineButton(checkmark(user.Profession == "Locum/Tenens")+"Locum/Tenens", "prof_locum"),
			tg.InlineButton(checkmark(user.Profession == "Therapy")+"Therapy", "prof_therapy"),
		),
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "🩺 Which profession should answers focus on?",
		ReplyMarkup: tg.InlineKeyboard(rows...),
	})
}

func (h *Handler) handleProfessionSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	user := middleware.GetUser(ctx)
	if user == nil || update.CallbackQuery == nil {
		return
	}

	code := strings.TrimPrefix(update.CallbackQuery.Data, "prof_")
	profession, ok := professionByCode[code]
	if !ok {
		h.answerCallback(ctx, b, update, "Unknown profession")
		return
	}

	if err := h.userService.SetProfession(ctx, user, profession); err != nil {
		slog.Error("set profession", "error", err, "user_id", user.ID)
		h.answerCallback(ctx, b, update, "Couldn't save that, try again")
		return
	}

	h.answerCallback(ctx, b, update, "")
	if update.CallbackQuery.Message.Message != nil {
		msg := update.CallbackQuery.Message.Message
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    msg.Chat.ID,
			MessageID: msg.ID,
			Text:      fmt.Sprintf("🩺 Focus set to %s.", professionLabel(profession)),
		})
	}
}

func (h *Handler) handleSettings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	chatID := update.Message.Chat.ID
	text := fmt.Sprintf(
		"⚙️ *Settings*\n\n"+
			"👤 Perspective: *%s*\n"+
			"🩺 Profession: *%s*\n"+
			"💬 Conversation length: *%d messages*\n",
		roleLabel(user.Role),
		professionLabel(user.Profession),
		h.conversations.Len(chatID),
	)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
}

func checkmark(selected bool) string {
	if selected {
		return "✅ "
	}
	return ""
}
