package chat

import "portfolio-api/internal/llm"

// Fixed sampling parameters of the assistant.
const (
	maxOutputTokens = 512
	temperature     = 0.7
	topP            = 0.8
	topK            = 40
)

// TrimHistory returns the most recent HistoryLimit turns.
func TrimHistory(history []Message) []Message {
	if len(history) > HistoryLimit {
		return history[len(history)-HistoryLimit:]
	}
	return history
}

// BuildRequest assembles the generation request: the system instruction,
// the most recent history turns and a final user turn carrying message.
func BuildRequest(systemPrompt string, history []Message, message string) llm.GenerateRequest {
	history = TrimHistory(history)

	contents := make([]llm.Content, 0, len(history)+1)
	for _, msg := range history {
		parts := make([]llm.Part, len(msg.Parts))
		for i, p := range msg.Parts {
			parts[i] = llm.Part{Text: p.Content()}
		}
		contents = append(contents, llm.Content{Role: msg.Role, Parts: parts})
	}
	contents = append(contents, llm.Content{
		Role:  llm.RoleUser,
		Parts: []llm.Part{{Text: message}},
	})

	return llm.GenerateRequest{
		SystemInstruction: &llm.Content{
			Role:  llm.RoleSystem,
			Parts: []llm.Part{{Text: systemPrompt}},
		},
		Contents: contents,
		GenerationConfig: llm.GenerationConfig{
			MaxOutputTokens: maxOutputTokens,
			Temperature:     temperature,
			TopP:            topP,
			TopK:            topK,
		},
	}
}
