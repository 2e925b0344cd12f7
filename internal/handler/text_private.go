package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"

	"github.com/carelane/staffbot/internal/cards"
	"github.com/carelane/staffbot/internal/config"
	"github.com/carelane/staffbot/internal/domain"
	"github.com/carelane/staffbot/internal/middleware"
	"github.com/carelane/staffbot/internal/repository"
	"github.com/carelane/staffbot/internal/service"
	tg "github.com/carelane/staffbot/internal/telegram"
)

// HandleTextPrivate processes one chat turn: append the user message,
// derive the context window, query the backend, render the reply and
// its insight cards.
func (h *Handler) HandleTextPrivate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	msg := update.Message
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	chatID := msg.Chat.ID

	// 1. Empty or whitespace-only input is a pure no-op: nothing is
	// appended and no request goes out.
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	// 2. At most one outstanding request per chat. A submission while
	// one is pending is dropped.
	if !h.conversations.TryBegin(chatID) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⏳ Still working on your previous question.",
		})
		return
	}
	defer h.conversations.End(chatID)

	// 3. Cooldown between turns
	if since := time.Since(user.LastInteraction); since < config.Cooldown {
		remaining := config.Cooldown - since
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   fmt.Sprintf("⏳ Give me %d more seconds.", int(remaining.Seconds())+1),
		})
		return
	}
	if err := h.userService.UpdateLastInteraction(ctx, user); err != nil {
		slog.Error("update last interaction", "error", err)
	}

	// 4. Record the user turn, then derive the context window from the
	// updated conversation.
	h.conversations.Append(chatID, domain.Message{Type: domain.MessageUser, Content: text})
	history := h.conversations.History(chatID, config.HistoryWindow)

	// 5. Typing indicator and a status message the user sees while the
	// backend works.
	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	statusMsg, _ := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "🔎 Analyzing market data...",
	})

	// 6. One POST per turn, no retry.
	requestID := uuid.New().String()
	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	start := time.Now()
	result, err := h.intelligence.Query(reqCtx, service.ChatQuery{
		RequestID:           requestID,
		Message:             text,
		UserRole:            user.RoleParam(),
		Profession:          user.ProfessionParam(),
		ConversationHistory: history,
	})
	latency := time.Since(start)

	if err != nil {
		h.failTurn(ctx, b, chatID, user, requestID, latency, statusMsg, reqCtx, err)
		return
	}

	// 7. Render the bot turn. Missing response text falls back to a
	// fixed string; structured payloads pass through untouched.
	content := tg.StripHTML(result.Response)
	if strings.TrimSpace(content) == "" {
		content = config.FallbackResponse
	}

	botMsg := domain.Message{
		Type:                domain.MessageBot,
		Content:             content,
		ForecastAnalysis:    result.ForecastAnalysis,
		RateRecommendation:  result.RateRecommendation,
		LeadAnalysis:        result.LeadAnalysis,
		VendorInfo:          result.VendorInfo,
		DetectedRole:        result.UserRoleDetected,
		ExtractedParameters: result.ExtractedParameters,
	}
	h.conversations.Append(chatID, botMsg)

	if statusMsg != nil {
		b.DeleteMessage(ctx, &bot.DeleteMessageParams{
			ChatID:    chatID,
			MessageID: statusMsg.ID,
		})
	}

	reply := content
	if result.UserRoleDetected != "" && user.Role == "" {
		reply += fmt.Sprintf("\n\n_Answering from a %s perspective._", result.UserRoleDetected)
	}
	if err := tg.SendLongMessage(ctx, b, chatID, reply); err != nil {
		slog.Error("send reply", "error", err, "request_id", requestID)
	}

	// 8. One Telegram message per insight card.
	for _, card := range []string{
		cards.Forecast(result.ForecastAnalysis),
		cards.Rate(result.RateRecommendation),
		cards.Vendor(result.VendorInfo),
		cards.Lead(result.LeadAnalysis),
	} {
		if card == "" {
			continue
		}
		if err := tg.SendLongMessage(ctx, b, chatID, card); err != nil {
			slog.Error("send card", "error", err, "request_id", requestID)
		}
	}

	// 9. Audit row, metadata only.
	h.logRequest(ctx, repository.RequestLogEntry{
		UserID:      user.ID,
		RequestID:   requestID,
		LatencyMs:   latency.Milliseconds(),
		Succeeded:   true,
		HadForecast: result.ForecastAnalysis != nil,
		HadRate:     result.RateRecommendation != nil,
		HadLead:     result.LeadAnalysis != nil,
	})
}

// failTurn converts any dispatcher failure into an error-flagged bot
// turn plus a user-visible notice. The single-flight gate is released
// by the caller's defer regardless.
func (h *Handler) failTurn(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User, requestID string, latency time.Duration, statusMsg *models.Message, reqCtx context.Context, err error) {
	slog.Error("intelligence query failed", "error", err, "request_id", requestID)

	notice := config.BackendErrorNotice
	var statusErr *domain.StatusError
	switch {
	case errors.As(err, &statusErr):
		notice = fmt.Sprintf("❌ The intelligence backend answered with status %d.\n\n%s", statusErr.Code, config.BackendErrorNotice)
	case errors.Is(err, domain.ErrMalformedResponse):
		// Unreadable reply body gets the generic treatment but a
		// distinct log line above shows the parse failure.
		notice = "❌ " + config.BackendErrorNotice
	case reqCtx.Err() != nil:
		notice = "⏳ The request timed out.\n\n" + config.BackendErrorNotice
	default:
		notice = "❌ " + config.BackendErrorNotice
	}

	h.conversations.Append(chatID, domain.Message{
		Type:    domain.MessageBot,
		Content: "Sorry, I couldn't process that request.",
		Err:     notice,
	})

	if statusMsg != nil {
		tg.EditLongMessage(ctx, b, chatID, statusMsg.ID, notice)
	} else {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: notice})
	}

	h.logRequest(ctx, repository.RequestLogEntry{
		UserID:    user.ID,
		RequestID: requestID,
		LatencyMs: latency.Milliseconds(),
		Succeeded: false,
	})
}

func (h *Handler) logRequest(ctx context.Context, e repository.RequestLogEntry) {
	if err := h.queries.LogRequest(ctx, e); err != nil {
		slog.Error("log request", "error", err, "request_id", e.RequestID)
	}
}
