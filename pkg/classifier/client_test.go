package classifier

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/plant-chatbot/pkg/logger"
)

func TestPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, SensorID, r.FormValue("capteurId"))
		assert.Equal(t, "Alice", r.FormValue("userId"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "leaf.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"prediction": "Tomato_late_blight",
			"confidence": 0.78,
			"severity": "high",
			"recommendations": ["Traiter avec fongicide"],
			"shouldWater": true
		}`))
	}))
	defer server.Close()

	client := NewClient(logger.NewLogger())
	result, err := client.Predict(context.Background(), server.URL, strings.NewReader("fake image bytes"), "leaf.jpg", "Alice")
	require.NoError(t, err)

	assert.Equal(t, "Tomato_late_blight", result.Prediction)
	assert.Equal(t, 0.78, result.Confidence)
	assert.Equal(t, "high", result.Severity)
	assert.Equal(t, []string{"Traiter avec fongicide"}, result.Recommendations)
	assert.True(t, result.ShouldWater)
}

func TestPredictFallbackUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, FallbackUserID, r.FormValue("userId"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prediction": "Tomato_healthy", "confidence": 0.9, "recommendations": [], "shouldWater": false}`))
	}))
	defer server.Close()

	client := NewClient(logger.NewLogger())
	_, err := client.Predict(context.Background(), server.URL, strings.NewReader("img"), "leaf.jpg", "")
	require.NoError(t, err)
}

func TestPredictStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(logger.NewLogger())
	_, err := client.Predict(context.Background(), server.URL, strings.NewReader("img"), "leaf.jpg", "Alice")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "Erreur API: 500", statusErr.Error())
}

func TestPredictUnreachableEndpoint(t *testing.T) {
	client := NewClient(logger.NewLogger())
	_, err := client.Predict(context.Background(), "http://127.0.0.1:1", strings.NewReader("img"), "leaf.jpg", "Alice")
	assert.Error(t, err)
}
