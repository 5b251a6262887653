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

func newTestPipelineSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	PipelineService,
	*mock.MockRetrievalClient,
	*mock.MockChatClient,
	*mock.MockDocumentRegistry,
) {
	t.Helper()
	mockRetrieval := mock.NewMockRetrievalClient(ctrl)
	mockChat := mock.NewMockChatClient(ctrl)
	mockRegistry := mock.NewMockDocumentRegistry(ctrl)

	svc := NewPipelineService(mockRetrieval, mockChat, mockRegistry, logger.Nop())

	return svc, mockRetrieval, mockChat, mockRegistry
}

func TestPipelineService_Answer_FullTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRetrieval, mockChat, _ := newTestPipelineSvc(t, ctrl)
	ctx := context.Background()

	query := "¿cuántos días de vacaciones tenemos?"
	snippet := "Las vacaciones anuales son de 30 días naturales."

	gomock.InOrder(
		mockRetrieval.EXPECT().Retrieve(ctx, query).Return([]string{snippet}, nil),
		mockChat.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), query).DoAndReturn(
			func(_ context.Context, systemPrompt string, history []models.Message, _ string) (string, error) {
				assert.Contains(t, systemPrompt, snippet, "retrieved snippet must reach the model")
				assert.Contains(t, systemPrompt, Deflection)
				assert.Empty(t, history, "history passed to the model must predate the current question")
				return "Son 30 días naturales al año.", nil
			},
		),
	)

	reply, err := svc.Answer(ctx, nil, query)
	require.NoError(t, err)
	assert.Equal(t, "Son 30 días naturales al año.", reply)
}

func TestPipelineService_Answer_PassesPriorHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRetrieval, mockChat, _ := newTestPipelineSvc(t, ctrl)
	ctx := context.Background()
	history := []models.Message{
		{Role: models.RoleUser, Content: "hola"},
		{Role: models.RoleAssistant, Content: "buenas"},
	}

	mockRetrieval.EXPECT().Retrieve(ctx, "¿y los viernes?").Return(nil, nil)
	mockChat.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), "¿y los viernes?").DoAndReturn(
		func(_ context.Context, _ string, got []models.Message, _ string) (string, error) {
			require.Len(t, got, 2)
			assert.Equal(t, "hola", got[0].Content)
			return "Los viernes hasta las 15:00.", nil
		},
	)

	reply, err := svc.Answer(ctx, history, "¿y los viernes?")
	require.NoError(t, err)
	assert.Equal(t, "Los viernes hasta las 15:00.", reply)
}

func TestPipelineService_Answer_EmptyRetrievalStillGenerates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRetrieval, mockChat, _ := newTestPipelineSvc(t, ctrl)
	ctx := context.Background()

	mockRetrieval.EXPECT().Retrieve(ctx, "hola").Return([]string{}, nil)
	mockChat.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), "hola").DoAndReturn(
		func(_ context.Context, systemPrompt string, _ []models.Message, _ string) (string, error) {
			assert.Contains(t, systemPrompt, Deflection)
			return Deflection, nil
		},
	)

	reply, err := svc.Answer(ctx, nil, "hola")
	require.NoError(t, err)
	assert.Equal(t, Deflection, reply)
}

func TestPipelineService_Answer_RetrievalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRetrieval, _, _ := newTestPipelineSvc(t, ctrl)
	ctx := context.Background()

	retrievalErr := errors.New("service unavailable")
	mockRetrieval.EXPECT().Retrieve(ctx, "hola").Return(nil, retrievalErr)

	_, err := svc.Answer(ctx, nil, "hola")
	require.Error(t, err)
	assert.ErrorIs(t, err, retrievalErr)
}

func TestPipelineService_Answer_GenerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRetrieval, mockChat, _ := newTestPipelineSvc(t, ctrl)
	ctx := context.Background()

	generationErr := errors.New("overloaded")
	mockRetrieval.EXPECT().Retrieve(ctx, "hola").Return([]string{"snippet"}, nil)
	mockChat.EXPECT().Generate(ctx, gomock.Any(), gomock.Any(), "hola").Return("", generationErr)

	_, err := svc.Answer(ctx, nil, "hola")
	require.Error(t, err)
	assert.ErrorIs(t, err, generationErr)
}

func TestPipelineService_UploadDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRetrieval, _, mockRegistry := newTestPipelineSvc(t, ctrl)
	ctx := context.Background()

	req := models.UploadRequest{Mode: models.ModeFast, URL: "https://example.com/convenio.pdf"}
	uploaded := models.Document{RemoteID: "doc-123", Name: "convenio.pdf", Mode: models.ModeFast}
	registered := uploaded
	registered.LocalID = "local-uuid"

	gomock.InOrder(
		mockRetrieval.EXPECT().Upload(ctx, req).Return(uploaded, nil),
		mockRegistry.EXPECT().AddDocument(ctx, uploaded).Return(registered, nil),
	)

	doc, err := svc.UploadDocument(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "local-uuid", doc.LocalID)
	assert.Equal(t, "doc-123", doc.RemoteID)
}

func TestPipelineService_UploadDocument_RegistryFailureStillReturnsHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRetrieval, _, mockRegistry := newTestPipelineSvc(t, ctrl)
	ctx := context.Background()

	req := models.UploadRequest{Mode: models.ModeAccurate, URL: "https://example.com/convenio.pdf"}
	uploaded := models.Document{RemoteID: "doc-123"}

	registryErr := errors.New("database is locked")
	mockRetrieval.EXPECT().Upload(ctx, req).Return(uploaded, nil)
	mockRegistry.EXPECT().AddDocument(ctx, uploaded).Return(models.Document{}, registryErr)

	doc, err := svc.UploadDocument(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, registryErr)
	assert.Equal(t, "doc-123", doc.RemoteID, "the remote handle survives a local registration failure")
}

func TestPipelineService_ListDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockRegistry := newTestPipelineSvc(t, ctrl)
	ctx := context.Background()

	docs := []models.Document{{LocalID: "a"}, {LocalID: "b"}}
	mockRegistry.EXPECT().ListDocuments(ctx).Return(docs, nil)

	got, err := svc.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, docs, got)
}
