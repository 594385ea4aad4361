package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Vovarama1992/legalmate/internal/chat"
	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
	"github.com/Vovarama1992/legalmate/internal/notificator"
	openai "github.com/sashabaranov/go-openai"
)

const completionTimeout = 120 * time.Second

const assistantPrompt = `You are an AI Legal Assistant, specialized in:
1. Providing legal advice
2. Case status tracking and updates
3. Legal document and contract review
4. Court date reminders and scheduling
5. Lawyer contact and communication

Your primary features include:
- Transcription and analysis of police encounters
- Sending transcriptions to trusted contacts
- Reviewing and summarizing legal documents

Provide concise, accurate legal information. If relevant, include:
- Actionable legal advice
- Important deadlines
- Safety considerations in legal situations
- Clear next steps for legal processes
`

var SuggestedActions = []string{
	"Get free legal advice",
	"Check eligibility for legal aid",
	"Find a legal aid clinic",
	"Connect with a pro bono lawyer",
	"Review legal documents",
	"Understand your legal rights",
	"Prepare for a court date",
	"Access legal forms and resources",
}

type AssistantService struct {
	llm       Completer
	model     string
	maxTokens int
	notifier  notificator.Notificator
	now       func() time.Time
}

func NewAssistantService(llm Completer, model string, maxTokens int, notifier notificator.Notificator) *AssistantService {
	if notifier == nil {
		notifier = notificator.Noop{}
	}
	return &AssistantService{
		llm:       llm,
		model:     model,
		maxTokens: maxTokens,
		notifier:  notifier,
		now:       time.Now,
	}
}

func (s *AssistantService) Reply(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return ChatResponse{}, apperrors.NewSchemaValidationError("message", "must not be empty")
	}

	start := time.Now()
	log.Printf("[ai] >>> START model=%s context=%d image=%t", s.model, len(req.Context), req.Image != "")

	messages := buildMessages(req)

	ctxGPT, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	text, err := s.llm.GetCompletion(ctxGPT, messages, s.model, s.maxTokens)
	log.Printf("[ai][%.1fs] GPT done err=%v", time.Since(start).Seconds(), err)
	if err != nil {
		_ = s.notifier.Notify(ctx, "assistant", err,
			fmt.Sprintf("Model: %s\n%s", s.model, Diagnose(err)))
		return ChatResponse{}, fmt.Errorf("assistant reply: %w", err)
	}

	return ChatResponse{
		Response:         ResponseBody{Text: text, Type: "text"},
		SuggestedActions: append([]string(nil), SuggestedActions...),
		Timestamp:        s.now().UTC().Format(time.RFC3339),
	}, nil
}

func buildMessages(req ChatRequest) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: assistantPrompt},
	}
	if req.UserInfo != nil {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: profilePrompt(req.UserInfo.WithDefaults()),
		})
	}

	for _, e := range req.Context {
		role := openai.ChatMessageRoleUser
		if e.Role == chat.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: e.Content})
	}

	if req.Image == "" {
		return append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: req.Message,
		})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: "data:image/jpeg;base64," + req.Image},
			},
			{Type: openai.ChatMessagePartTypeText, Text: req.Message},
		},
	})
}

func profilePrompt(u chat.UserInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Answer in language: %s.\nResponse style: %s.", u.PreferredLanguage, u.Preferences.ResponseStyle)
	if u.Preferences.Jurisdiction != "" {
		fmt.Fprintf(&b, "\nJurisdiction: %s.", u.Preferences.Jurisdiction)
	}
	if len(u.TravelHistory) > 0 {
		fmt.Fprintf(&b, "\nRecent travel: %s.", strings.Join(u.TravelHistory, ", "))
	}
	if *u.Preferences.IncludeNextSteps {
		b.WriteString("\nEnd with clear next steps.")
	}
	return b.String()
}
