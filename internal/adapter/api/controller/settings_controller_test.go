package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/plant-chatbot/internal/adapter/api/dto"
	"github.com/agrisense/plant-chatbot/internal/domain/chat"
	"github.com/agrisense/plant-chatbot/internal/domain/settings"
)

func TestGetSettingsDefaults(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, settings.DefaultAPIURL, resp.APIURL)
	assert.Empty(t, resp.UserID)
}

func TestUpdateSettings(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/settings",
		[]byte(`{"apiUrl":"http://classifier:5001","userId":"Alice"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "http://classifier:5001", resp.APIURL)
	assert.Equal(t, "Alice", resp.UserID)

	// The name just changed, so the bot introduces itself
	assert.Equal(t,
		"✅ Paramètres enregistrés !\n\n👋 Ravi de vous rencontrer, Alice ! Je suis prêt à analyser vos plantes 🌱",
		resp.Message)

	// The confirmation is also appended to the conversation log
	history := env.sessionHistory(t)
	require.Len(t, history, 1)
	assert.Equal(t, chat.RoleBot, history[0].Role)
	assert.Equal(t, resp.Message, history[0].Content)

	// The profile itself is persisted
	profile, err := env.settingsRepo.Load(context.Background(), testSessionID)
	require.NoError(t, err)
	assert.Equal(t, settings.Profile{APIURL: "http://classifier:5001", UserID: "Alice"}, profile)
}

func TestUpdateSettingsUnchangedName(t *testing.T) {
	env := newTestEnv(t)

	err := env.settingsRepo.Save(context.Background(), testSessionID,
		settings.Profile{APIURL: settings.DefaultAPIURL, UserID: "Alice"})
	require.NoError(t, err)

	w := env.do(t, http.MethodPut, "/api/v1/settings",
		[]byte(`{"apiUrl":"http://classifier:5001","userId":"Alice"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Paramètres enregistrés avec succès !", resp.Message)
}

func TestUpdateSettingsLocalizedConfirmation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/settings?lang=en",
		[]byte(`{"apiUrl":"http://classifier:5001","userId":"Alice"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t,
		"✅ Settings saved!\n\n👋 Nice to meet you, Alice! I'm ready to analyze your plants 🌱",
		resp.Message)
}

func TestUpdateSettingsRejectsMissingURL(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/settings", []byte(`{"userId":"Alice"}`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "Paramètres invalides", errResp.Message)

	// Nothing was stored
	profile, err := env.settingsRepo.Load(context.Background(), testSessionID)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultProfile(), profile)
}
