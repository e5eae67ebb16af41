package chat

import (
	"regexp"
	"strings"
)

// Redacted replaces every matched injection phrase.
const Redacted = "[REDACTED]"

// injectionPatterns are applied in order; each match is replaced with Redacted.
var injectionPatterns = compile(
	"ignore previous instructions",
	"system prompt",
	"you are now",
	"act as",
	"pretend to be",
	"ignore all previous",
	"forget everything",
	"new instructions",
	"override",
	"bypass",
	"hack",
	"exploit",
	"inject",
	"prompt injection",
	"system message",
	"role play",
	"character",
	"persona",
	"behave as",
	"respond as",
)

var whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)

func compile(phrases ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(phrases))
	for _, p := range phrases {
		patterns = append(patterns, regexp.MustCompile("(?i)"+regexp.QuoteMeta(p)))
	}
	return patterns
}

// Sanitize redacts known prompt-injection phrases, collapses whitespace and
// truncates the result to MaxMessageLength characters.
func Sanitize(text string) string {
	for _, p := range injectionPatterns {
		text = p.ReplaceAllLiteralString(text, Redacted)
	}
	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	return truncate(text, MaxMessageLength)
}

func truncate(s string, limit int) string {
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

// SanitizeConversation sanitizes the text of every user turn and the new
// message. Model turns are passed through untouched. The input is not modified.
func SanitizeConversation(history []Message, message string) ([]Message, string) {
	out := make([]Message, len(history))
	for i, msg := range history {
		parts := make([]Part, len(msg.Parts))
		for j, part := range msg.Parts {
			if msg.Role == RoleUser && part.Text != nil {
				part = NewPart(Sanitize(*part.Text))
			}
			parts[j] = part
		}
		out[i] = Message{Role: msg.Role, Parts: parts}
	}
	return out, Sanitize(message)
}
