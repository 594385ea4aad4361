package checklist

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Vovarama1992/legalmate/internal/ai"
	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
	"github.com/Vovarama1992/legalmate/internal/notificator"
	"github.com/tidwall/gjson"
)

type FunctionCaller interface {
	CallFunction(ctx context.Context, req ai.FunctionCallRequest) (string, error)
}

type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

type Service struct {
	llm      FunctionCaller
	opts     Options
	notifier notificator.Notificator
}

func NewService(llm FunctionCaller, opts Options, notifier notificator.Notificator) *Service {
	if notifier == nil {
		notifier = notificator.Noop{}
	}
	return &Service{llm: llm, opts: opts, notifier: notifier}
}

// Generate turns a transcription into a validated checklist with one remote
// call. Nothing is retried or cached.
func (s *Service) Generate(ctx context.Context, transcription string) (Checklist, error) {
	if strings.TrimSpace(transcription) == "" {
		return Checklist{}, apperrors.NewSchemaValidationError("transcription", "must not be empty")
	}

	start := time.Now()
	log.Printf("[checklist] >>> START model=%s chars=%d", s.opts.Model, len(transcription))

	args, err := s.llm.CallFunction(ctx, ai.FunctionCallRequest{
		Model:       s.opts.Model,
		System:      systemPrompt,
		User:        transcription,
		Function:    FunctionDefinition(),
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	log.Printf("[checklist][%.1fs] completion done err=%v", time.Since(start).Seconds(), err)
	if err != nil {
		s.notifyFailure(ctx, err)
		return Checklist{}, fmt.Errorf("generate checklist: %w", err)
	}

	if !gjson.Valid(args) {
		err := apperrors.NewMalformedResponseError("openai", "function_call.arguments is not valid JSON", nil)
		s.notifyFailure(ctx, err)
		return Checklist{}, fmt.Errorf("generate checklist: %w", err)
	}

	out, err := ValidateJSON([]byte(args))
	if err != nil {
		return Checklist{}, fmt.Errorf("generate checklist: %w", err)
	}

	log.Printf("[checklist] done items=%d", len(out.Items))
	return out, nil
}

func (s *Service) notifyFailure(ctx context.Context, err error) {
	_ = s.notifier.Notify(ctx, "checklist", err,
		fmt.Sprintf("Model: %s\n%s", s.opts.Model, ai.Diagnose(err)))
}
