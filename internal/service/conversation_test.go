package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gestoria-mays/enrique/internal/logger"
	"github.com/gestoria-mays/enrique/internal/mock"
	"github.com/gestoria-mays/enrique/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConversationSvc(t *testing.T, ctrl *gomock.Controller) (ConversationService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewConversationService(mockRepo, logger.Nop())
	return svc, mockRepo
}

func newTestSession() *Session {
	return NewSession(models.User{Username: "maria"})
}

func TestConversationService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestConversationSvc(t, ctrl)
	ctx := context.Background()
	session := newTestSession()

	mockRepo.EXPECT().SaveConversations(ctx, "maria", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, conversations map[string]models.Conversation) error {
			assert.Contains(t, conversations, "nóminas")
			return nil
		},
	)

	conversation, err := svc.Create(ctx, session, "nóminas")
	require.NoError(t, err)
	assert.Empty(t, conversation)
	assert.Equal(t, "nóminas", session.Active, "new conversation must become active")
}

func TestConversationService_Create_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestConversationSvc(t, ctrl)
	session := newTestSession()

	for _, name := range []string{"", "   ", "\t"} {
		_, err := svc.Create(context.Background(), session, name)
		assert.ErrorIs(t, err, ErrEmptyConversationName)
	}
	assert.Empty(t, session.Conversations, "blank names must not touch the store")
}

func TestConversationService_Create_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestConversationSvc(t, ctrl)
	ctx := context.Background()
	session := newTestSession()

	mockRepo.EXPECT().SaveConversations(ctx, "maria", gomock.Any()).Return(nil)

	_, err := svc.Create(ctx, session, "nóminas")
	require.NoError(t, err)

	_, err = svc.Create(ctx, session, "nóminas")
	assert.ErrorIs(t, err, ErrDuplicateConversationName)
}

func TestConversationService_Create_PersistFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestConversationSvc(t, ctrl)
	ctx := context.Background()
	session := newTestSession()

	mockRepo.EXPECT().SaveConversations(ctx, "maria", gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Create(ctx, session, "nóminas")
	require.Error(t, err)
	assert.NotContains(t, session.Conversations, "nóminas", "failed create must not leave the conversation behind")
	assert.Empty(t, session.Active)
}

func TestConversationService_Select(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestConversationSvc(t, ctrl)
	session := newTestSession()
	session.Conversations["nóminas"] = models.Conversation{{Role: models.RoleUser, Content: "hola"}}

	conversation, err := svc.Select(context.Background(), session, "nóminas")
	require.NoError(t, err)
	assert.Len(t, conversation, 1)
	assert.Equal(t, "nóminas", session.Active)

	_, err = svc.Select(context.Background(), session, "no-existe")
	assert.ErrorIs(t, err, ErrConversationNotFound)
	assert.Equal(t, "nóminas", session.Active, "failed select must not change the active conversation")
}

func TestConversationService_Append_SavesEveryTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestConversationSvc(t, ctrl)
	ctx := context.Background()
	session := newTestSession()
	session.Conversations["nóminas"] = models.Conversation{}
	session.Active = "nóminas"

	saves := 0
	mockRepo.EXPECT().SaveConversations(ctx, "maria", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ map[string]models.Conversation) error {
			saves++
			return nil
		},
	).Times(2)

	require.NoError(t, svc.Append(ctx, session, models.RoleUser, "hola"))
	require.NoError(t, svc.Append(ctx, session, models.RoleAssistant, "buenas"))

	assert.Equal(t, 2, saves, "every appended turn must hit the store")
	conv := session.Conversations["nóminas"]
	require.Len(t, conv, 2)
	assert.Equal(t, models.RoleUser, conv[0].Role)
	assert.Equal(t, models.RoleAssistant, conv[1].Role)
}

func TestConversationService_Append_NoActiveConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestConversationSvc(t, ctrl)
	session := newTestSession()

	err := svc.Append(context.Background(), session, models.RoleUser, "hola")
	assert.ErrorIs(t, err, ErrNoActiveConversation)
}
