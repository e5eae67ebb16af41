package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/service"
	"portfolio-api/internal/telegram"
)

// TelegramHandler helps the operator find the chat id for contact notifications.
type TelegramHandler struct {
	updates service.UpdatesClient
}

// NewTelegramHandler creates a new TelegramHandler.
func NewTelegramHandler(updates service.UpdatesClient) *TelegramHandler {
	return &TelegramHandler{updates: updates}
}

// ChatIDResponse lists the chats that recently wrote to the bot.
type ChatIDResponse struct {
	Message string             `json:"message"`
	Updates json.RawMessage    `json:"updates"`
	ChatIDs []telegram.ChatRef `json:"chatIds"`
}

// ServeHTTP reads the bot's pending updates.
func (h *TelegramHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if !h.updates.Configured() {
		writeError(ctx, w, http.StatusInternalServerError, "TELEGRAM_BOT_TOKEN not configured")
		return
	}

	resp, err := h.updates.GetUpdates(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch telegram updates", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "Failed to fetch Telegram updates")
		return
	}
	if !resp.OK {
		writeJSON(ctx, w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get updates from Telegram",
			Details: resp,
		})
		return
	}

	updates, err := resp.Updates()
	if err != nil {
		logger.ErrorContext(ctx, "failed to decode telegram updates", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "Failed to fetch Telegram updates")
		return
	}

	raw := resp.Result
	if len(raw) == 0 {
		raw = json.RawMessage("[]")
	}
	writeJSON(ctx, w, http.StatusOK, ChatIDResponse{
		Message: "Send a message to your bot on Telegram, then refresh this page",
		Updates: raw,
		ChatIDs: telegram.ChatRefs(updates),
	})
}
