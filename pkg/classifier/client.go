package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/agrisense/plant-chatbot/pkg/analysis"
	"github.com/agrisense/plant-chatbot/pkg/logger"
)

const (
	// SensorID is the fixed identifier sent with every prediction request
	SensorID = "chatbot-001"

	// FallbackUserID is sent when no display name is stored
	FallbackUserID = "user-chatbot"

	// MaxImageBytes is the attachment size limit enforced before any
	// network activity (10 MiB)
	MaxImageBytes = 10 * 1024 * 1024
)

// StatusError reports a non-2xx answer from the classifier endpoint
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Erreur API: %d", e.StatusCode)
}

// Client calls the remote image-classification endpoint
type Client struct {
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a classifier client. Timeouts are left to the
// transport defaults; there is no user-facing abort once a request is
// issued beyond context cancellation.
func NewClient(log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		logger:     log,
	}
}

// Predict uploads an image to {endpoint}/predict as a multipart form and
// decodes the structured analysis result.
func (c *Client) Predict(ctx context.Context, endpoint string, image io.Reader, filename, userID string) (*analysis.Result, error) {
	if userID == "" {
		userID = FallbackUserID
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to copy image into request: %w", err)
	}
	if err := writer.WriteField("capteurId", SensorID); err != nil {
		return nil, fmt.Errorf("failed to write capteurId field: %w", err)
	}
	if err := writer.WriteField("userId", userID); err != nil {
		return nil, fmt.Errorf("failed to write userId field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := endpoint + "/predict"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.logger.Info("Calling classifier endpoint",
		"url", url,
		"sensor_id", SensorID,
		"user_id", userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Classifier returned non-2xx status", "status", resp.StatusCode)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var result analysis.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	c.logger.Info("Classifier result received",
		"prediction", result.Prediction,
		"confidence", result.Confidence,
		"severity", result.Severity,
		"should_water", result.ShouldWater)

	return &result, nil
}
