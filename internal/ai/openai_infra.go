package ai

import (
	"context"
	"net/http"

	"github.com/Vovarama1992/legalmate/internal/config"
	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
	openai "github.com/sashabaranov/go-openai"
)

const (
	serviceOpenAI  = "openai"
	serviceWhisper = "whisper"
)

type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	conf := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		conf.BaseURL = cfg.OpenAIBaseURL
	}
	if cfg.HTTPTimeout > 0 {
		conf.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(conf),
	}
}

func (c *OpenAIClient) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, model string, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", classifyOpenAIError(serviceOpenAI, err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.NewMalformedResponseError(serviceOpenAI, "completion has no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// FunctionCallRequest forces the model to answer through exactly one function.
type FunctionCallRequest struct {
	Model       string
	System      string
	User        string
	Function    openai.FunctionDefinition
	Temperature float32
	MaxTokens   int
}

// CallFunction returns the raw arguments string of the forced function call.
// It does not parse the arguments.
func (c *OpenAIClient) CallFunction(ctx context.Context, req FunctionCallRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Functions:    []openai.FunctionDefinition{req.Function},
		FunctionCall: map[string]string{"name": req.Function.Name},
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
	})
	if err != nil {
		return "", classifyOpenAIError(serviceOpenAI, err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewMalformedResponseError(serviceOpenAI, "completion has no choices", nil)
	}
	call := resp.Choices[0].Message.FunctionCall
	if call == nil {
		return "", apperrors.NewMalformedResponseError(serviceOpenAI, "choices[0].message.function_call is missing", nil)
	}
	if call.Name != "" && call.Name != req.Function.Name {
		return "", apperrors.NewMalformedResponseError(serviceOpenAI,
			"unexpected function "+call.Name+", want "+req.Function.Name, nil)
	}
	return call.Arguments, nil
}

// Transcribe sends the audio file to Whisper as multipart form data.
func (c *OpenAIClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	})
	if err != nil {
		return "", classifyOpenAIError(serviceWhisper, err)
	}
	if resp.Text == "" {
		return "", apperrors.NewMalformedResponseError(serviceWhisper, "empty transcript", nil)
	}
	return resp.Text, nil
}
