package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/plant-chatbot/internal/adapter/api/dto"
	"github.com/agrisense/plant-chatbot/internal/adapter/repository"
	"github.com/agrisense/plant-chatbot/internal/domain/chat"
	"github.com/agrisense/plant-chatbot/internal/domain/settings"
	"github.com/agrisense/plant-chatbot/pkg/bot"
	"github.com/agrisense/plant-chatbot/pkg/classifier"
	"github.com/agrisense/plant-chatbot/pkg/logger"
	"github.com/agrisense/plant-chatbot/pkg/session"
)

const testSessionID = "session-test"

type testEnv struct {
	router       *gin.Engine
	chatRepo     chat.Repository
	settingsRepo settings.Repository
	analysis     *AnalysisController
}

// newTestEnv wires the controllers onto the in-memory repositories with
// the same routing and middleware layout the application uses.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger()
	chatRepo := repository.NewMemoryChatRepository()
	settingsRepo := repository.NewMemorySettingsRepository()

	engine, err := bot.NewEngine(log)
	require.NoError(t, err)

	chatController := NewChatController(engine, chatRepo, settingsRepo, 0, log)
	analysisController := NewAnalysisController(classifier.NewClient(log), chatRepo, settingsRepo, log)
	settingsController := NewSettingsController(settingsRepo, chatRepo, log)

	router := gin.New()
	api := router.Group("/api/v1")

	chatGroup := api.Group("/chat")
	chatGroup.Use(session.Middleware())
	chatGroup.POST("/messages", chatController.ProcessMessage)
	chatGroup.POST("/analyze", analysisController.Analyze)
	chatGroup.GET("/welcome", chatController.GetWelcome)
	chatGroup.GET("/history", chatController.GetHistory)
	chatGroup.DELETE("/history", chatController.DeleteHistory)

	settingsGroup := api.Group("/settings")
	settingsGroup.Use(session.Middleware())
	settingsGroup.GET("", settingsController.Get)
	settingsGroup.PUT("", settingsController.Update)

	return &testEnv{
		router:       router,
		chatRepo:     chatRepo,
		settingsRepo: settingsRepo,
		analysis:     analysisController,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(session.HeaderName, testSessionID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) sessionHistory(t *testing.T) []chat.Message {
	t.Helper()

	history, err := e.chatRepo.GetHistory(context.Background(), testSessionID, 50, 0)
	require.NoError(t, err)
	return history
}

func TestProcessMessageRequiresSessionHeader(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages",
		bytes.NewReader([]byte(`{"message":"bonjour"}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "Session ID manquant", errResp.Message)
}

func TestProcessMessage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/chat/messages", []byte(`{"message":"bonjour"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, bot.IntentGreeting, resp.Intent)
	assert.Equal(t, bot.LangFrench, resp.Language)
	assert.Equal(t, "Bonjour ! 👋 Comment puis-je vous aider aujourd'hui ?", resp.Response)

	// Both turns are persisted, returned in chronological order
	require.Len(t, resp.History, 2)
	assert.Equal(t, chat.RoleUser, resp.History[0].Role)
	assert.Equal(t, "bonjour", resp.History[0].Content)
	assert.Equal(t, chat.RoleBot, resp.History[1].Role)
	assert.Equal(t, resp.Response, resp.History[1].Content)
}

func TestProcessMessageUsesStoredDisplayName(t *testing.T) {
	env := newTestEnv(t)

	err := env.settingsRepo.Save(context.Background(), testSessionID,
		settings.Profile{APIURL: settings.DefaultAPIURL, UserID: "Alice"})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/v1/chat/messages", []byte(`{"message":"bonjour"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bonjour Alice ! 👋 Comment puis-je vous aider aujourd'hui ?", resp.Response)
}

func TestProcessMessageRejectsEmptyBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/chat/messages", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.sessionHistory(t))
}

func TestGetWelcomePersistsOnce(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/chat/welcome", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.WelcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bot.WelcomeMessage(""), resp.Message)
	assert.Len(t, env.sessionHistory(t), 1)

	// A second call returns the greeting without logging it again
	w = env.do(t, http.MethodGet, "/api/v1/chat/welcome", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.sessionHistory(t), 1)
}

func TestGetHistoryChronologicalOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.chatRepo.SaveMessage(ctx, chat.NewMessage(testSessionID, chat.RoleUser, "first")))
	require.NoError(t, env.chatRepo.SaveMessage(ctx, chat.NewMessage(testSessionID, chat.RoleBot, "second")))

	w := env.do(t, http.MethodGet, "/api/v1/chat/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.History, 2)
	assert.Equal(t, "first", resp.History[0].Content)
	assert.Equal(t, "second", resp.History[1].Content)
}

func TestDeleteHistoryReturnsResetMessage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.chatRepo.SaveMessage(ctx, chat.NewMessage(testSessionID, chat.RoleUser, "bonjour")))

	w := env.do(t, http.MethodDelete, "/api/v1/chat/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.WelcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bot.ResetMessage(), resp.Message)

	// The old entries are gone; only the reset prompt remains
	history := env.sessionHistory(t)
	require.Len(t, history, 1)
	assert.Equal(t, chat.RoleBot, history[0].Role)
	assert.Equal(t, bot.ResetMessage(), history[0].Content)
}
