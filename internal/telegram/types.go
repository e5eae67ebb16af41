package telegram

import (
	"encoding/json"
	"fmt"
)

// UpdatesResponse is the envelope returned by getUpdates.
type UpdatesResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// Updates decodes the result array.
func (r *UpdatesResponse) Updates() ([]Update, error) {
	if len(r.Result) == 0 {
		return nil, nil
	}
	var updates []Update
	if err := json.Unmarshal(r.Result, &updates); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}
	return updates, nil
}

// Update is a single incoming update. Only message updates are modelled.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      *Chat  `json:"chat,omitempty"`
	Text      string `json:"text,omitempty"`
}

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}

type Chat struct {
	ID        int64  `json:"id"`
	Type      string `json:"type,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}

// ChatRef identifies a chat that wrote to the bot.
type ChatRef struct {
	ChatID    int64  `json:"chatId"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	Type      string `json:"type,omitempty"`
}

// ChatRefs lists the distinct chats found in updates, in first-seen order.
// Chat fields win over sender fields; updates without a chat id are skipped.
func ChatRefs(updates []Update) []ChatRef {
	seen := make(map[int64]bool)
	refs := make([]ChatRef, 0, len(updates))

	for _, u := range updates {
		if u.Message == nil {
			continue
		}

		var ref ChatRef
		if from := u.Message.From; from != nil {
			ref.ChatID = from.ID
			ref.Username = from.Username
			ref.FirstName = from.FirstName
		}
		if chat := u.Message.Chat; chat != nil {
			if chat.ID != 0 {
				ref.ChatID = chat.ID
			}
			if chat.Username != "" {
				ref.Username = chat.Username
			}
			if chat.FirstName != "" {
				ref.FirstName = chat.FirstName
			}
			ref.Type = chat.Type
		}

		if ref.ChatID == 0 || seen[ref.ChatID] {
			continue
		}
		seen[ref.ChatID] = true
		refs = append(refs, ref)
	}
	return refs
}
