package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*fileUserRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_data.json")
	repo := NewFileUserRepository(path, logger.Nop()).(*fileUserRepository)
	return repo, path
}

func TestCreateUser_Success(t *testing.T) {
	repo, path := newTestUserRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{
		Username:     "maria",
		PasswordHash: "$2a$10$fakehash",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", created.Username)
	assert.NotNil(t, created.Conversations)
	assert.False(t, created.CreatedAt.IsZero())

	// The file holds one JSON object keyed by username.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]models.User
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Contains(t, onDisk, "maria")
	assert.Equal(t, "$2a$10$fakehash", onDisk["maria"].PasswordHash)
}

func TestCreateUser_DuplicateKeepsFirstHash(t *testing.T) {
	repo, _ := newTestUserRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "maria", PasswordHash: "first-hash"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Username: "maria", PasswordHash: "second-hash"})
	require.ErrorIs(t, err, ErrUsernameAlreadyExists)

	stored, err := repo.FindUserByUsername(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, "first-hash", stored.PasswordHash)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	_, err := repo.FindUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByUsername_CaseSensitive(t *testing.T) {
	repo, _ := newTestUserRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "Maria", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.FindUserByUsername(ctx, "maria")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSaveConversations_RoundTrip(t *testing.T) {
	repo, path := newTestUserRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "maria", PasswordHash: "h"})
	require.NoError(t, err)

	conv := models.Conversation{}
	turns := []string{"hola", "respuesta 1", "¿vacaciones?", "respuesta 2", "gracias"}
	for i, content := range turns {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		conv = conv.Append(role, content)
	}
	require.NoError(t, repo.SaveConversations(ctx, "maria", map[string]models.Conversation{"dudas": conv}))

	// Reload through a fresh repository to prove the order survived disk.
	reloaded := NewFileUserRepository(path, logger.Nop())
	user, err := reloaded.FindUserByUsername(ctx, "maria")
	require.NoError(t, err)
	require.Len(t, user.Conversations["dudas"], len(turns))
	for i, content := range turns {
		assert.Equal(t, content, user.Conversations["dudas"][i].Content)
	}
	assert.Equal(t, models.RoleUser, user.Conversations["dudas"][0].Role)
	assert.Equal(t, models.RoleAssistant, user.Conversations["dudas"][1].Role)
}

func TestSaveConversations_UnknownUser(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	err := repo.SaveConversations(context.Background(), "ghost", map[string]models.Conversation{})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestLoad_MissingFileYieldsEmptyStore(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	users, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoad_CorruptFileSelfHeals(t *testing.T) {
	repo, path := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("{definitely not json"), 0o600))

	// Corrupt content is discarded, not surfaced as an error.
	users, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	// A following save produces a valid JSON object again.
	_, err = repo.CreateUser(ctx, models.User{Username: "maria", PasswordHash: "h"})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]models.User
	assert.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Contains(t, onDisk, "maria")
}

func TestSave_NoLeftoverTempFiles(t *testing.T) {
	repo, path := newTestUserRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "maria", PasswordHash: "h"})
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
