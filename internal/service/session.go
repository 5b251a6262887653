package service

import (
	"github.com/gestoria-mays/enrique/models"
	"github.com/google/uuid"
)

// Session is the explicit per-login state object threaded through every
// operation after authentication. It replaces ambient globals: nothing about
// the logged-in user lives outside of it.
//
// State machine: a Session is created by a successful login (no conversation
// selected); creating or selecting a conversation makes it active; nothing
// removes authentication except dropping the Session on logout or exit.
//
// A Session is not synchronized. After login it is owned by the TUI update
// goroutine; background commands receive copies, never the Session itself.
type Session struct {
	// ID is a per-login identifier, used only for log correlation.
	ID string

	// Username is the authenticated account.
	Username string

	// Conversations is the in-memory working copy of the user's
	// conversations, persisted wholesale on every mutation.
	Conversations map[string]models.Conversation

	// Active is the name of the selected conversation, empty when none.
	Active string
}

// NewSession constructs a Session for the authenticated user.
func NewSession(user models.User) *Session {
	conversations := user.Conversations
	if conversations == nil {
		conversations = make(map[string]models.Conversation)
	}

	return &Session{
		ID:            uuid.NewString(),
		Username:      user.Username,
		Conversations: conversations,
	}
}

// ActiveConversation returns the selected conversation, or false when no
// conversation is active.
func (s *Session) ActiveConversation() (models.Conversation, bool) {
	if s.Active == "" {
		return nil, false
	}

	conv, ok := s.Conversations[s.Active]
	return conv, ok
}
