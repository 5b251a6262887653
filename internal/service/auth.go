package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/internal/store"
	"github.com/gestoria-mays/enrique/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username does not exist, so the
// unknown-user path costs roughly the same as a wrong-password check.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("enrique-dummy-password"), bcrypt.DefaultCost)

// authService is the concrete implementation of [AuthService]. It handles
// user registration and credential verification using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both username and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUsernameAlreadyExists if the username is taken; the existing
//     record is left untouched.
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, err
		}
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and opens a [Session].
//
// Unknown usernames and wrong passwords both collapse into
// ErrInvalidCredentials so the caller cannot tell which one happened; the
// unknown-user path still performs a bcrypt comparison against a fixed dummy
// hash to keep the two paths close in timing.
func (a *authService) Login(ctx context.Context, username, password string) (*Session, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return nil, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().Str("username", username).Msg("wrong password")
		return nil, ErrInvalidCredentials
	}

	session := NewSession(foundUser)
	log.Info().Str("username", username).Str("session_id", session.ID).Msg("user logged in")

	return session, nil
}
