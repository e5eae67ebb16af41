package llm

// Role values accepted by the generation API.
const (
	RoleUser   = "user"
	RoleModel  = "model"
	RoleSystem = "system"
)

// Part is a single piece of content within a turn.
type Part struct {
	Text string `json:"text"`
}

// Content is one turn of a conversation.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig holds sampling parameters for a generation request.
type GenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

// GenerateRequest is the payload of a streamGenerateContent call.
type GenerateRequest struct {
	SystemInstruction *Content         `json:"systemInstruction,omitempty"`
	Contents          []Content        `json:"contents"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
}

// Candidate is one generated alternative in a stream chunk.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// StreamChunk is the JSON payload of a single SSE event from the generation API.
type StreamChunk struct {
	Candidates []Candidate `json:"candidates"`
}

// Text returns the text of the first part of the first candidate, or "".
func (c StreamChunk) Text() string {
	if len(c.Candidates) == 0 {
		return ""
	}
	parts := c.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
