package models

// ChatRequest is the JSON body of a chat completion call.
type ChatRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system"`
	Messages    []Message `json:"messages"`
}

// ChatContentBlock is one element of the content array in a chat reply.
type ChatContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ChatResponse is the chat completion reply payload. Different API versions
// expose the generated text through different fields, so all known carriers
// are declared here and the adapter probes them in a fixed order.
type ChatResponse struct {
	Content []ChatContentBlock `json:"content"`

	// Completion carries the text on legacy completion-style replies.
	Completion string `json:"completion"`

	// Text carries the text on some intermediate client versions.
	Text string `json:"text"`
}
