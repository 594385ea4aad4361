package ai

import (
	"context"

	"github.com/Vovarama1992/legalmate/internal/chat"
	openai "github.com/sashabaranov/go-openai"
)

type Completer interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, model string, maxTokens int) (string, error)
}

type Assistant interface {
	// Reply answers one user message given the prior turns exactly as the
	// client sent them. Nothing is stored between calls.
	Reply(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

type ChatRequest struct {
	Message  string              `json:"message"`
	Context  []chat.ContextEntry `json:"context"`
	UserInfo *chat.UserInfo      `json:"userInfo,omitempty"`
	Image    string              `json:"image,omitempty"`
}

type ResponseBody struct {
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	Confidence *float64 `json:"confidence,omitempty"`
}

type ChatResponse struct {
	Response         ResponseBody `json:"response"`
	SuggestedActions []string     `json:"suggested_actions"`
	Timestamp        string       `json:"timestamp"`
}
