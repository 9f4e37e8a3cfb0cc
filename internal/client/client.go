// Package client implements the HTTP client for the monitoring backend's
// settings endpoints. Each call issues exactly one outbound request; there
// is no retry and no caching, a layer above decides whether to try again.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"watchtune/internal/constants"
	"watchtune/internal/errors"
	"watchtune/internal/logger"
	"watchtune/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: constants.RequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// saveResponse is the backend's acknowledgement of a settings write.
type saveResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// FetchSettings reads the full settings document. Network failure, a
// non-2xx status, and a malformed body all collapse into a fetch failure;
// a half-populated document is never returned.
func (c *Client) FetchSettings(ctx context.Context) (models.Settings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+constants.SettingsPath, nil)
	if err != nil {
		return models.Settings{}, errors.Fetchf("building request: %v", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return models.Settings{}, errors.Fetchf("requesting settings: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return models.Settings{}, errors.Fetchf("unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return models.Settings{}, errors.Fetchf("reading response: %v", err)
	}

	settings, err := models.DecodeSettings(body)
	if err != nil {
		return models.Settings{}, errors.Fetchf("%v", err)
	}

	logger.Debug("Fetched settings document",
		"landmarks", len(settings.LandmarkSettings),
		"objects", len(settings.DetectionObjects))
	return settings, nil
}

// SaveSettings writes the full settings document. Every save transmits the
// complete document; there are no partial updates. Server-side validation
// failure, network failure, and timeout all collapse into a save failure.
func (c *Client) SaveSettings(ctx context.Context, settings models.Settings) error {
	payload, err := models.EncodeSettings(settings)
	if err != nil {
		return errors.Savef("%v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+constants.SettingsPath, bytes.NewReader(payload))
	if err != nil {
		return errors.Savef("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Savef("sending document: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errors.Savef("unexpected status %d", res.StatusCode)
	}

	var ack saveResponse
	if err := json.NewDecoder(res.Body).Decode(&ack); err != nil {
		return errors.Savef("reading acknowledgement: %v", err)
	}
	if !ack.Success {
		if ack.Error != "" {
			return errors.Savef("backend rejected document: %s", ack.Error)
		}
		return errors.Savef("backend did not acknowledge the write")
	}

	logger.Debug("Saved settings document")
	return nil
}
