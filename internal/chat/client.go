package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
)

const serviceChat = "chat"

// Client talks to the legal-assistant chat backend.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Message  string         `json:"message"`
	Context  []ContextEntry `json:"context"`
	UserInfo UserInfo       `json:"userInfo"`
	Image    string         `json:"image,omitempty"`
}

type chatResponse struct {
	Response *struct {
		Text       *string  `json:"text"`
		Confidence *float64 `json:"confidence"`
	} `json:"response"`
	Timestamp string `json:"timestamp"`
}

// SendMessage posts one message with the context exactly as given.
func (c *Client) SendMessage(ctx context.Context, req SendRequest) (Reply, error) {
	entries := req.Context
	if entries == nil {
		entries = []ContextEntry{}
	}

	b, err := json.Marshal(chatRequest{
		Message:  req.Message,
		Context:  entries,
		UserInfo: req.UserInfo,
		Image:    req.Image,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(b))
	if err != nil {
		return Reply{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Reply{}, apperrors.NewRemoteServiceError(serviceChat, 0, "", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Reply{}, apperrors.NewRemoteServiceError(serviceChat, resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Reply{}, apperrors.NewMalformedResponseError(serviceChat, "decode body", err)
	}
	if out.Response == nil || out.Response.Text == nil {
		return Reply{}, apperrors.NewMalformedResponseError(serviceChat, "response.text is missing", nil)
	}

	ts, err := parseTimestamp(out.Timestamp)
	if err != nil {
		return Reply{}, apperrors.NewMalformedResponseError(serviceChat, "bad timestamp", err)
	}

	return Reply{
		Text:       *out.Response.Text,
		Confidence: out.Response.Confidence,
		Timestamp:  ts,
	}, nil
}

// CheckHealth returns a *ServiceUnavailableError unless GET / answers 2xx.
func (c *Client) CheckHealth(ctx context.Context) error {
	url := c.baseURL + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperrors.NewServiceUnavailableError(url, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.NewServiceUnavailableError(url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewServiceUnavailableError(url, fmt.Errorf("status %d", resp.StatusCode))
	}
	return nil
}

func (c *Client) Healthy(ctx context.Context) bool {
	return c.CheckHealth(ctx) == nil
}

// The backend may omit the zone; such stamps are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("timestamp is empty")
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
