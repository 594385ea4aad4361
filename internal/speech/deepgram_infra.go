package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vovarama1992/legalmate/internal/config"
	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
)

const serviceDeepgram = "deepgram"

type DeepgramClient struct {
	apiKey string
	url    string
	client *http.Client
}

func NewDeepgramClient(cfg *config.Config) *DeepgramClient {
	url := cfg.DeepgramURL
	if cfg.DeepgramParams != "" {
		url += "?" + cfg.DeepgramParams
	}
	return &DeepgramClient{
		apiKey: cfg.DeepgramKey,
		url:    url,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

func audioContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".oga":
		return "audio/ogg"
	case ".m4a", ".mp4":
		return "audio/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".webm":
		return "audio/webm"
	}
	return "application/octet-stream"
}

func (c *DeepgramClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", audioContentType(filePath))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperrors.NewRemoteServiceError(serviceDeepgram, 0, "", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.NewRemoteServiceError(serviceDeepgram, resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}

	var parsed struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperrors.NewMalformedResponseError(serviceDeepgram, "decode body", err)
	}

	if len(parsed.Results.Channels) == 0 ||
		len(parsed.Results.Channels[0].Alternatives) == 0 ||
		parsed.Results.Channels[0].Alternatives[0].Transcript == "" {
		return "", apperrors.NewMalformedResponseError(serviceDeepgram, "empty transcript", nil)
	}

	return parsed.Results.Channels[0].Alternatives[0].Transcript, nil
}
