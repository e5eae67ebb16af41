package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// FrameKind tags the variant carried by a Frame.
type FrameKind int

const (
	FrameText FrameKind = iota
	FrameDone
	FrameError
)

// Frame is one unit of the client-facing stream.
type Frame struct {
	Kind    FrameKind
	Text    string
	Message string
}

// TextDelta returns a frame carrying a piece of generated text.
func TextDelta(text string) Frame {
	return Frame{Kind: FrameText, Text: text}
}

// Done returns the terminal success frame.
func Done() Frame {
	return Frame{Kind: FrameDone}
}

// Failure returns the terminal in-band error frame.
func Failure(message string) Frame {
	return Frame{Kind: FrameError, Message: message}
}

// Terminal reports whether no frame may follow f.
func (f Frame) Terminal() bool {
	return f.Kind != FrameText
}

type textPayload struct {
	Text string `json:"text"`
}

type donePayload struct {
	Done bool `json:"done"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// Encode renders the frame in wire form: "data: <json>\n\n".
func (f Frame) Encode() ([]byte, error) {
	var payload any
	switch f.Kind {
	case FrameText:
		payload = textPayload{Text: f.Text}
	case FrameDone:
		payload = donePayload{Done: true}
	case FrameError:
		payload = errorPayload{Error: f.Message}
	default:
		return nil, fmt.Errorf("unknown frame kind %d", f.Kind)
	}

	var buf bytes.Buffer
	buf.WriteString("data: ")
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	// Encoder terminates the value with a single newline; SSE needs a blank line.
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Writer serializes frames onto a response and flushes after each one.
type Writer struct {
	w       io.Writer
	flusher http.Flusher
}

// NewWriter creates a Writer. flusher may be nil for writers that do not buffer.
func NewWriter(w io.Writer, flusher http.Flusher) *Writer {
	return &Writer{w: w, flusher: flusher}
}

// WriteFrame writes one frame and flushes it to the client.
func (w *Writer) WriteFrame(f Frame) error {
	b, err := f.Encode()
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	if w.flusher != nil {
		w.flusher.Flush()
	}
	return nil
}
