package chat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
)

const (
	WelcomeText = "I am LegalMate, your personal legal guardian in the palm of your hand. " +
		"I'm here to ensure your rights are upheld during legal encounters by providing you with " +
		"real-time support and legal guidance. How can I safeguard your legal journey today?"

	FallbackText = "Sorry, I'm having trouble connecting to the service. Please try again later."

	ImagePrompt = "What can you tell me about this image?"
)

type Sender interface {
	SendMessage(ctx context.Context, req SendRequest) (Reply, error)
	CheckHealth(ctx context.Context) error
}

// Session gates a single conversation on the backend health check. The
// transcript itself is owned by the caller and threaded through Send.
type Session struct {
	client   Sender
	userInfo UserInfo
	now      func() time.Time

	mu        sync.Mutex
	connected bool
}

func NewSession(client Sender, userInfo UserInfo) *Session {
	return &Session{
		client:   client,
		userInfo: userInfo.WithDefaults(),
		now:      time.Now,
	}
}

// Open checks the backend. On failure the transcript is empty and the
// session refuses to send.
func (s *Session) Open(ctx context.Context) (Transcript, error) {
	if err := s.client.CheckHealth(ctx); err != nil {
		log.Printf("[chat] health check failed: %v", err)
		s.setConnected(false)
		return Transcript{}, err
	}

	s.setConnected(true)
	return NewTranscript(Message{
		Content:   WelcomeText,
		IsBot:     true,
		Timestamp: s.now(),
		Type:      MessageTypeText,
	}), nil
}

func (s *Session) Close() { s.setConnected(false) }

func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Session) setConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
}

// Send appends the user message and the reply to a copy of t. On a failed
// round trip the copy ends with a fallback message and the error is returned.
func (s *Session) Send(ctx context.Context, t Transcript, text string) (Transcript, error) {
	if strings.TrimSpace(text) == "" {
		return t, fmt.Errorf("message is empty")
	}
	return s.roundTrip(ctx, t, Message{
		Content:   text,
		IsBot:     false,
		Timestamp: s.now(),
		Type:      MessageTypeText,
	}, "")
}

// SendImage asks about a captured photo; imageB64 goes to the backend and
// imageURI stays local for rendering.
func (s *Session) SendImage(ctx context.Context, t Transcript, imageB64, imageURI string) (Transcript, error) {
	if imageB64 == "" {
		return t, fmt.Errorf("image is empty")
	}
	return s.roundTrip(ctx, t, Message{
		Content:   ImagePrompt,
		IsBot:     false,
		Timestamp: s.now(),
		Type:      MessageTypeImage,
		ImageURI:  imageURI,
	}, imageB64)
}

func (s *Session) roundTrip(ctx context.Context, t Transcript, userMsg Message, image string) (Transcript, error) {
	if !s.Connected() {
		return t, apperrors.NewServiceUnavailableError("chat session", fmt.Errorf("session is not connected"))
	}

	history := t.Context()
	withUser := t.Append(userMsg)

	reply, err := s.client.SendMessage(ctx, SendRequest{
		Message:  userMsg.Content,
		Context:  history,
		UserInfo: s.userInfo,
		Image:    image,
	})
	if err != nil {
		log.Printf("[chat] send failed: %v", err)
		return withUser.Append(Message{
			Content:   FallbackText,
			IsBot:     true,
			Timestamp: s.now(),
			Type:      MessageTypeError,
		}), err
	}

	return withUser.Append(Message{
		Content:    reply.Text,
		IsBot:      true,
		Timestamp:  reply.Timestamp,
		Type:       MessageTypeText,
		Confidence: reply.Confidence,
	}), nil
}
