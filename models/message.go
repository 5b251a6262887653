package models

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser marks a message typed by the end user.
	RoleUser Role = "user"

	// RoleAssistant marks a message generated by the chat model.
	RoleAssistant Role = "assistant"
)

// Message is a single chat turn. Messages are immutable once appended to a
// conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered sequence of messages owned by exactly one user.
// Insertion order is chronological order; messages are only ever appended,
// never reordered or deleted individually.
type Conversation []Message

// Append returns the conversation with the given turn added at the end.
func (c Conversation) Append(role Role, content string) Conversation {
	return append(c, Message{Role: role, Content: content})
}
