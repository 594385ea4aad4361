package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Vovarama1992/legalmate/internal/chat"
	"github.com/Vovarama1992/legalmate/internal/config"
	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func textCompletion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []any{map[string]any{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	})
	return string(b)
}

type openAIStub struct {
	status int
	body   string

	mu    sync.Mutex
	calls int
	last  []byte
}

func (o *openAIStub) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

func (o *openAIStub) Last() gjson.Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	return gjson.ParseBytes(o.last)
}

func (o *openAIStub) client(t *testing.T) *OpenAIClient {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		o.mu.Lock()
		o.calls++
		o.last = body
		o.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(o.status)
		_, _ = w.Write([]byte(o.body))
	}))
	t.Cleanup(srv.Close)
	return NewOpenAIClient(&config.Config{OpenAIKey: "test-key", OpenAIBaseURL: srv.URL + "/v1"})
}

type alerts struct{ details []string }

func (a *alerts) Notify(_ context.Context, _ string, _ error, details string) error {
	a.details = append(a.details, details)
	return nil
}

func TestReply_TextWithContext(t *testing.T) {
	stub := &openAIStub{status: 200, body: textCompletion("You have the right to remain silent.")}
	svc := NewAssistantService(stub.client(t), "gpt-4o-mini", 1024, nil)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC) }

	resp, err := svc.Reply(context.Background(), ChatRequest{
		Message: "Do I have to answer questions?",
		Context: []chat.ContextEntry{
			{Role: chat.RoleAssistant, Content: "How can I help?"},
			{Role: chat.RoleUser, Content: "I was stopped by police."},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "You have the right to remain silent.", resp.Response.Text)
	assert.Equal(t, "text", resp.Response.Type)
	assert.Equal(t, SuggestedActions, resp.SuggestedActions)
	assert.Len(t, resp.SuggestedActions, 8)
	assert.Equal(t, "2024-06-01T09:30:00Z", resp.Timestamp)

	req := stub.Last()
	assert.Equal(t, "gpt-4o-mini", req.Get("model").String())
	assert.Equal(t, int64(1024), req.Get("max_tokens").Int())
	assert.Equal(t, int64(4), req.Get("messages.#").Int())
	assert.Equal(t, "system", req.Get("messages.0.role").String())
	assert.Contains(t, req.Get("messages.0.content").String(), "AI Legal Assistant")
	assert.Equal(t, "assistant", req.Get("messages.1.role").String())
	assert.Equal(t, "How can I help?", req.Get("messages.1.content").String())
	assert.Equal(t, "user", req.Get("messages.2.role").String())
	assert.Equal(t, "I was stopped by police.", req.Get("messages.2.content").String())
	assert.Equal(t, "Do I have to answer questions?", req.Get("messages.3.content").String())
}

func TestReply_ImageAndProfile(t *testing.T) {
	stub := &openAIStub{status: 200, body: textCompletion("That is a parking ticket.")}
	svc := NewAssistantService(stub.client(t), "gpt-4o-mini", 1024, nil)

	_, err := svc.Reply(context.Background(), ChatRequest{
		Message:  "What can you tell me about this image?",
		Image:    "aGVsbG8=",
		UserInfo: &chat.UserInfo{PreferredLanguage: "es", Preferences: chat.Preferences{Jurisdiction: "CA"}},
	})
	require.NoError(t, err)

	req := stub.Last()
	require.Equal(t, int64(3), req.Get("messages.#").Int())

	profile := req.Get("messages.1.content").String()
	assert.Contains(t, profile, "language: es")
	assert.Contains(t, profile, "Jurisdiction: CA")
	assert.Contains(t, profile, "next steps")

	last := req.Get("messages.2")
	assert.Equal(t, "user", last.Get("role").String())
	assert.Equal(t, "image_url", last.Get("content.0.type").String())
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", last.Get("content.0.image_url.url").String())
	assert.Equal(t, "text", last.Get("content.1.type").String())
	assert.Equal(t, "What can you tell me about this image?", last.Get("content.1.text").String())
}

func TestReply_Failures(t *testing.T) {
	stub := &openAIStub{status: 429, body: `{"error":{"message":"quota","type":"insufficient_quota"}}`}
	n := &alerts{}
	svc := NewAssistantService(stub.client(t), "gpt-4o-mini", 1024, n)

	_, err := svc.Reply(context.Background(), ChatRequest{Message: "hi"})
	var remote *apperrors.RemoteServiceError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 429, remote.StatusCode)
	require.Len(t, n.details, 1)
	assert.Contains(t, n.details[0], "quota")
	assert.Equal(t, 1, stub.Calls())

	_, err = svc.Reply(context.Background(), ChatRequest{Message: "  "})
	assert.ErrorIs(t, err, apperrors.ErrSchemaValidation)
	assert.Equal(t, 1, stub.Calls(), "empty message never reaches the provider")
}

func TestGetCompletion_NoChoices(t *testing.T) {
	stub := &openAIStub{status: 200, body: `{"id":"x","object":"chat.completion","choices":[]}`}
	_, err := stub.client(t).GetCompletion(context.Background(), nil, "gpt-4o-mini", 10)
	assert.ErrorIs(t, err, apperrors.ErrMalformedResponse)
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{apperrors.NewRemoteServiceError("openai", 401, "", nil), "Invalid API key."},
		{apperrors.NewRemoteServiceError("openai", 404, "", nil), "Model not found."},
		{apperrors.NewRemoteServiceError("openai", 400, "unknown model", nil), "Model name is wrong."},
		{apperrors.NewRemoteServiceError("openai", 400, "", nil), "Bad request."},
		{apperrors.NewRemoteServiceError("openai", 503, "", nil), "Provider internal error."},
		{apperrors.NewRemoteServiceError("openai", 0, "", errors.New("dial")), "Provider unreachable (transport failure)."},
		{apperrors.NewMalformedResponseError("openai", "x", nil), "Provider answered with an unexpected response shape."},
		{errors.New("weird"), "Unknown error: weird"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Diagnose(tt.err))
	}
}
