package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks portfolio-api/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService portfolio-api/internal/service ChatService

import (
	"context"
	"errors"
	"io"
	"iter"

	"portfolio-api/internal/chat"
	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/llm"
	"portfolio-api/internal/sse"
)

// LLMClient is an interface for interacting with the generation API.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// StreamGenerate starts a streaming generation and returns the raw SSE body.
	StreamGenerate(ctx context.Context, req llm.GenerateRequest) (io.ReadCloser, error)
	// Configured reports whether the client has credentials.
	Configured() bool
}

// ChatService provides the chat proxy functionality.
type ChatService interface {
	// Available returns ErrNotConfigured when chat cannot be served.
	Available() error
	// StartChat sanitizes the conversation, opens the upstream stream and
	// returns it once the upstream accepted the request.
	StartChat(ctx context.Context, req chat.Request) (*ChatStream, error)
}

// ChatStream is an accepted upstream generation stream.
type ChatStream struct {
	body io.ReadCloser
}

// NewChatStream wraps an upstream SSE body.
func NewChatStream(body io.ReadCloser) *ChatStream {
	return &ChatStream{body: body}
}

// Frames yields the client frames of the stream: text deltas then one terminal frame.
func (s *ChatStream) Frames(ctx context.Context) iter.Seq[sse.Frame] {
	return chat.Restream(ctx, s.body)
}

// Close releases the upstream connection.
func (s *ChatStream) Close() error {
	return s.body.Close()
}

// chatService implements ChatService.
type chatService struct {
	llmClient    LLMClient
	systemPrompt string
}

// NewChatService creates a new ChatService answering with the given system prompt.
func NewChatService(llmClient LLMClient, systemPrompt string) ChatService {
	return &chatService{
		llmClient:    llmClient,
		systemPrompt: systemPrompt,
	}
}

func (s *chatService) Available() error {
	if !s.llmClient.Configured() {
		return ErrNotConfigured
	}
	return nil
}

// StartChat processes a chat request and opens the upstream stream.
func (s *chatService) StartChat(ctx context.Context, req chat.Request) (*ChatStream, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.Available(); err != nil {
		logger.ErrorContext(ctx, "chat requested without generation credentials")
		return nil, err
	}

	// Business validation
	if issues := chat.Validate(req); len(issues) > 0 {
		logger.WarnContext(ctx, "invalid chat request", "issues", len(issues))
		return nil, NewValidationError(issues)
	}

	history, message := chat.SanitizeConversation(req.History, req.Message)
	payload := chat.BuildRequest(s.systemPrompt, history, message)

	body, err := s.llmClient.StreamGenerate(ctx, payload)
	if err != nil {
		var apiErr *llm.APIError
		if errors.As(err, &apiErr) {
			logger.ErrorContext(ctx, "generation API rejected request",
				"status", apiErr.StatusCode,
				"body", string(apiErr.Body),
			)
			return nil, &UpstreamError{
				StatusCode: apiErr.StatusCode,
				Details:    apiErr.Details(),
				Err:        apiErr,
			}
		}
		logger.ErrorContext(ctx, "failed to start generation stream", "error", err)
		return nil, WrapError(err, "failed to start generation stream")
	}

	logger.InfoContext(ctx, "chat stream started",
		"message_length", len(message),
		"history_turns", len(payload.Contents)-1,
	)
	return NewChatStream(body), nil
}
