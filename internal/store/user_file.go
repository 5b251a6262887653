package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/models"
)

// fileUserRepository is the flat-file implementation of [UserRepository].
// The whole store is one JSON object keyed by username; every mutation reads
// the file, changes the mapping in memory and rewrites the file. A single
// mutex serializes all load-mutate-save cycles, so concurrent registrations
// within one process cannot clobber each other.
//
// Recovery policy: a missing file yields an empty store; a file with
// malformed JSON is discarded and replaced with an empty store. Losing the
// data is accepted behavior here, not a crash.
type fileUserRepository struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewFileUserRepository constructs a [UserRepository] persisting to the given
// file path. The file is created empty on first save; the parent directory is
// created as needed.
func NewFileUserRepository(path string, logger *logger.Logger) UserRepository {
	logger.Debug().Str("path", path).Msg("creating file user repository")
	return &fileUserRepository{
		path:   path,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with CreatedAt set.
//
// Error handling:
//   - duplicate username → [ErrUsernameAlreadyExists]; the stored record,
//     including its password hash, is left untouched.
//   - any I/O failure during save → wrapped error.
func (r *fileUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(ctx)
	if _, exists := users[user.Username]; exists {
		log.Error().Str("username", user.Username).Msg("username already taken")
		return models.User{}, ErrUsernameAlreadyExists
	}

	if user.Conversations == nil {
		user.Conversations = make(map[string]models.Conversation)
	}
	user.CreatedAt = time.Now().UTC()
	users[user.Username] = user

	if err := r.save(users); err != nil {
		log.Err(err).Str("username", user.Username).Msg("failed to persist new user")
		return models.User{}, fmt.Errorf("failed to persist new user: %w", err)
	}

	return user, nil
}

// FindUserByUsername retrieves the record stored under username.
// The username key is case-sensitive. Returns [ErrNoUserWasFound] when the
// store has no such record.
func (r *fileUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(ctx)
	user, exists := users[username]
	if !exists {
		return models.User{}, ErrNoUserWasFound
	}

	user.Username = username
	return user, nil
}

// SaveConversations replaces the whole conversation mapping of username and
// rewrites the store file. This is the sole durability mechanism: it is
// called after every message append, trading write amplification for
// simplicity.
func (r *fileUserRepository) SaveConversations(ctx context.Context, username string, conversations map[string]models.Conversation) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(ctx)
	user, exists := users[username]
	if !exists {
		log.Error().Str("username", username).Msg("cannot save conversations of unknown user")
		return ErrNoUserWasFound
	}

	user.Conversations = conversations
	users[username] = user

	if err := r.save(users); err != nil {
		log.Err(err).Str("username", username).Msg("failed to persist conversations")
		return fmt.Errorf("failed to persist conversations: %w", err)
	}

	return nil
}

// LoadAll returns the complete store mapping.
func (r *fileUserRepository) LoadAll(ctx context.Context) (map[string]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx), nil
}

// load reads the store file and fails open: a missing file yields an empty
// mapping; malformed content is logged with [ErrStoreCorrupt], discarded and
// replaced by an empty store on the next save. Callers must hold r.mu.
func (r *fileUserRepository) load(ctx context.Context) map[string]models.User {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Err(err).Str("path", r.path).Msg("failed to read credential store file, starting empty")
		}
		return make(map[string]models.User)
	}

	var users map[string]models.User
	if err = json.Unmarshal(data, &users); err != nil {
		log.Err(ErrStoreCorrupt).Str("path", r.path).Msg("resetting credential store to empty")
		return make(map[string]models.User)
	}
	if users == nil {
		users = make(map[string]models.User)
	}

	for name, user := range users {
		user.Username = name
		users[name] = user
	}

	return users
}

// save serializes the whole mapping and replaces the store file via a temp
// file and an atomic rename, so a crash mid-write cannot truncate the store.
// Callers must hold r.mu.
func (r *fileUserRepository) save(users map[string]models.User) error {
	dir := filepath.Dir(r.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create credential store dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential store: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err = os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace credential store file: %w", err)
	}

	return nil
}
