package telegram

import (
	"context"
	"strings"
)

// Notifier delivers Markdown messages to one configured chat.
type Notifier struct {
	client *Client
	chatID string
}

// NewNotifier creates a notifier that sends to chatID through client.
func NewNotifier(client *Client, chatID string) *Notifier {
	return &Notifier{client: client, chatID: chatID}
}

// Configured reports whether both the bot token and the chat id are set.
func (n *Notifier) Configured() bool {
	return n.client.Configured() && n.chatID != ""
}

// Notify sends text using Markdown parse mode.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	if !n.Configured() {
		return ErrNotConfigured
	}
	return n.client.SendMessage(ctx, SendMessageRequest{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: ParseModeMarkdown,
	})
}

var markdownEscaper = strings.NewReplacer(
	"_", `\_`,
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
)

// EscapeMarkdown escapes the characters that legacy Markdown treats as entities.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
