package handlers

import (
	"errors"
	"net/http"

	"portfolio-api/internal/chat"
	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/jsonutil"
	"portfolio-api/internal/service"
	"portfolio-api/internal/sse"
)

// maxChatBodyBytes bounds the inbound chat payload.
const maxChatBodyBytes = 1 << 20

// ChatHandler handles HTTP requests for chat.
type ChatHandler struct {
	chatService service.ChatService
	limiter     Limiter
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService, limiter Limiter) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		limiter:     limiter,
	}
}

// UpstreamErrorResponse is returned when the generation API rejects a request.
type UpstreamErrorResponse struct {
	Error   string           `json:"error"`
	Status  int              `json:"status"`
	Details jsonutil.Lenient `json:"details"`
}

// ServeHTTP handles HTTP requests for chat.
// Until the upstream accepts the request every failure is a JSON error; after
// that the answer is an SSE stream that always ends with a done or error frame.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	decision, ok := allow(w, r, h.limiter)
	if !ok {
		return
	}

	if err := h.chatService.Available(); err != nil {
		logger.ErrorContext(ctx, "chat service unavailable", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "AI service not configured")
		return
	}

	req, issues := chat.DecodeRequest(http.MaxBytesReader(w, r.Body, maxChatBodyBytes))
	if len(issues) > 0 {
		logger.WarnContext(ctx, "invalid chat request", "issues", len(issues))
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request data", Details: issues})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(ctx, w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	stream, err := h.chatService.StartChat(ctx, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	defer func() {
		_ = stream.Close()
	}()

	setRateLimitHeaders(w, decision, false)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)

	out := sse.NewWriter(w, flusher)
	frames := 0
	for frame := range stream.Frames(ctx) {
		if err := out.WriteFrame(frame); err != nil {
			logger.WarnContext(ctx, "client stream closed", "frames", frames, "error", err)
			return
		}
		frames++
	}
	logger.InfoContext(ctx, "chat stream finished", "frames", frames)
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func (h *ChatHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		writeJSON(ctx, w, upstreamErr.StatusCode, UpstreamErrorResponse{
			Error:   "Gemini API error",
			Status:  upstreamErr.StatusCode,
			Details: upstreamErr.Details,
		})
		return
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request data", Details: validationErr.Issues})
		return
	}

	if errors.Is(err, service.ErrNotConfigured) {
		writeError(ctx, w, http.StatusInternalServerError, "AI service not configured")
		return
	}

	logger.ErrorContext(ctx, "service error", "error", err)
	writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
}
