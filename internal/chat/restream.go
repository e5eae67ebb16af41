package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"

	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/llm"
	"portfolio-api/internal/sse"
)

const (
	readChunkSize = 4096
	// StreamErrorMessage is the in-band message sent when the upstream stream breaks.
	StreamErrorMessage = "Stream error occurred"
)

// Restream converts an upstream generation SSE body into client frames.
// It yields a TextDelta for every non-empty candidate text in arrival order,
// then exactly one terminal frame: Done at end of stream, or Failure when
// reading the body fails. Events that are not JSON or carry no text are skipped.
func Restream(ctx context.Context, body io.Reader) iter.Seq[sse.Frame] {
	return func(yield func(sse.Frame) bool) {
		logger := contextutil.LoggerFromContext(ctx)

		stopped := false
		deltas := 0
		parser := sse.NewParser(func(ev sse.Event) {
			if stopped {
				return
			}
			text, ok := extractDelta(ev.Data)
			if !ok {
				return
			}
			deltas++
			if !yield(sse.TextDelta(text)) {
				stopped = true
			}
		})

		buf := make([]byte, readChunkSize)
		for !stopped {
			n, err := body.Read(buf)
			if n > 0 {
				parser.Feed(buf[:n])
			}
			if err == nil {
				continue
			}
			if stopped {
				return
			}
			if errors.Is(err, io.EOF) {
				logger.DebugContext(ctx, "upstream stream finished", "deltas", deltas)
				yield(sse.Done())
				return
			}
			logger.ErrorContext(ctx, "streaming error", "error", err)
			yield(sse.Failure(StreamErrorMessage))
			return
		}
	}
}

// extractDelta pulls candidates[0].content.parts[0].text out of an event payload.
func extractDelta(data string) (string, bool) {
	if data == "" {
		return "", false
	}
	var chunk llm.StreamChunk
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		return "", false
	}
	text := chunk.Text()
	return text, text != ""
}
