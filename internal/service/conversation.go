package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/internal/store"
	"github.com/gestoria-mays/enrique/models"
)

// conversationService is the concrete implementation of
// [ConversationService]. Durability model: every mutation rewrites the user's
// whole conversation mapping through the UserRepository — no batching, no
// debounce. Write amplification is the accepted price of simplicity.
type conversationService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewConversationService constructs a [ConversationService] wired to the
// given UserRepository.
func NewConversationService(userRepository store.UserRepository, logger *logger.Logger) ConversationService {
	return &conversationService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Create adds a new empty conversation under name and makes it active.
//
// Returns:
//   - ErrEmptyConversationName when name is blank; the store is untouched.
//   - ErrDuplicateConversationName when the user already owns that name.
func (c *conversationService) Create(ctx context.Context, session *Session, name string) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyConversationName
	}
	if _, exists := session.Conversations[name]; exists {
		return nil, ErrDuplicateConversationName
	}

	conversation := models.Conversation{}
	session.Conversations[name] = conversation

	if err := c.userRepository.SaveConversations(ctx, session.Username, session.Conversations); err != nil {
		delete(session.Conversations, name)
		log.Err(err).Str("username", session.Username).Str("conversation", name).Msg("failed to persist new conversation")
		return nil, fmt.Errorf("failed to persist new conversation: %w", err)
	}

	session.Active = name
	log.Debug().Str("username", session.Username).Str("conversation", name).Msg("conversation created")

	return conversation, nil
}

// Select makes the named conversation active.
// Returns ErrConversationNotFound when the user does not own it.
func (c *conversationService) Select(ctx context.Context, session *Session, name string) (models.Conversation, error) {
	conversation, exists := session.Conversations[name]
	if !exists {
		return nil, ErrConversationNotFound
	}

	session.Active = name
	return conversation, nil
}

// Append adds one turn to the active conversation and persists the whole
// conversation mapping immediately. This save-on-every-append is the sole
// consistency mechanism of the application.
func (c *conversationService) Append(ctx context.Context, session *Session, role models.Role, content string) error {
	log := logger.FromContext(ctx)

	if session.Active == "" {
		return ErrNoActiveConversation
	}

	session.Conversations[session.Active] = session.Conversations[session.Active].Append(role, content)

	if err := c.userRepository.SaveConversations(ctx, session.Username, session.Conversations); err != nil {
		log.Err(err).
			Str("username", session.Username).
			Str("conversation", session.Active).
			Msg("failed to persist appended message")
		return fmt.Errorf("failed to persist appended message: %w", err)
	}

	return nil
}
