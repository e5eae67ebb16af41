// Package chat holds the conversation model of the site assistant and the
// pure steps that turn an inbound request into a generation request.
package chat

import (
	"io"

	"portfolio-api/internal/validation"
)

const (
	// MaxMessageLength bounds the inbound message and every sanitized text, in characters.
	MaxMessageLength = 2000
	// HistoryLimit is the number of most recent turns forwarded upstream.
	HistoryLimit = 20
)

// Roles a history turn may carry.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Part is a text fragment of a turn. Text is a pointer so that a part
// without a text field, or a null part, fails validation.
type Part struct {
	Text *string `json:"text" validate:"required"`
}

// NewPart returns a Part carrying text.
func NewPart(text string) Part {
	return Part{Text: &text}
}

// Content returns the text of the part, or "" when it has none.
func (p Part) Content() string {
	if p.Text == nil {
		return ""
	}
	return *p.Text
}

// Message is one turn in a conversation.
type Message struct {
	Role  string `json:"role" validate:"oneof=user model"`
	Parts []Part `json:"parts" validate:"min=1,dive"`
}

// Request is the inbound chat payload.
type Request struct {
	Message string    `json:"message" validate:"required,max=2000"`
	History []Message `json:"history" validate:"dive"`
}

// DecodeRequest reads a Request from a JSON body and validates it.
func DecodeRequest(body io.Reader) (Request, []validation.Issue) {
	var req Request
	if issues := validation.DecodeJSON(body, &req); issues != nil {
		return Request{}, issues
	}
	if issues := Validate(req); issues != nil {
		return Request{}, issues
	}
	return req, nil
}

// Validate checks the bounds of a Request.
func Validate(req Request) []validation.Issue {
	return validation.Struct(req)
}
