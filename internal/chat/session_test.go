package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	healthErr error
	reply     Reply
	sendErr   error
	requests  []SendRequest
}

func (f *fakeSender) CheckHealth(context.Context) error { return f.healthErr }

func (f *fakeSender) SendMessage(_ context.Context, req SendRequest) (Reply, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.sendErr
}

var serverTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestSession_HealthFailureBlocksChat(t *testing.T) {
	sender := &fakeSender{healthErr: apperrors.NewServiceUnavailableError("http://x/", errors.New("status 503"))}
	s := NewSession(sender, UserInfo{})

	tr, err := s.Open(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
	assert.Equal(t, 0, tr.Len(), "no welcome message")
	assert.False(t, s.Connected())

	after, err := s.Send(context.Background(), tr, "What is my case status?")
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
	assert.Equal(t, 0, after.Len())
	assert.Empty(t, sender.requests, "nothing sent while disconnected")
}

func TestSession_OpenAddsWelcome(t *testing.T) {
	s := NewSession(&fakeSender{}, UserInfo{})

	tr, err := s.Open(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, tr.Len())

	msg, _ := tr.Last()
	assert.True(t, msg.IsBot)
	assert.Equal(t, WelcomeText, msg.Content)
	assert.Equal(t, MessageTypeText, msg.Type)
	assert.True(t, s.Connected())
}

func TestSession_SendThreadsTranscript(t *testing.T) {
	conf := 0.8
	sender := &fakeSender{reply: Reply{Text: "Your hearing is on Monday.", Confidence: &conf, Timestamp: serverTime}}
	s := NewSession(sender, UserInfo{PreferredLanguage: "es"})

	tr, err := s.Open(context.Background())
	require.NoError(t, err)

	next, err := s.Send(context.Background(), tr, "When is my next court date?")
	require.NoError(t, err)

	assert.Equal(t, 1, tr.Len(), "input transcript untouched")
	require.Equal(t, 3, next.Len())

	msgs := next.Messages()
	assert.False(t, msgs[1].IsBot)
	assert.Equal(t, "When is my next court date?", msgs[1].Content)
	assert.True(t, msgs[2].IsBot)
	assert.Equal(t, "Your hearing is on Monday.", msgs[2].Content)
	assert.Equal(t, serverTime, msgs[2].Timestamp, "server timestamp used verbatim")
	require.NotNil(t, msgs[2].Confidence)
	assert.InDelta(t, 0.8, *msgs[2].Confidence, 0.0001)

	require.Len(t, sender.requests, 1)
	req := sender.requests[0]
	assert.Equal(t, "When is my next court date?", req.Message)
	assert.Equal(t, []ContextEntry{{Role: RoleAssistant, Content: WelcomeText}}, req.Context)
	assert.Equal(t, "es", req.UserInfo.PreferredLanguage)
	assert.Equal(t, "concise", req.UserInfo.Preferences.ResponseStyle)

	_, err = s.Send(context.Background(), next, "Thanks")
	require.NoError(t, err)
	assert.Equal(t, []ContextEntry{
		{Role: RoleAssistant, Content: WelcomeText},
		{Role: RoleUser, Content: "When is my next court date?"},
		{Role: RoleAssistant, Content: "Your hearing is on Monday."},
	}, sender.requests[1].Context)
}

func TestSession_SendFailureAddsFallback(t *testing.T) {
	boom := apperrors.NewRemoteServiceError("chat", 500, "", nil)
	sender := &fakeSender{sendErr: boom}
	s := NewSession(sender, UserInfo{})

	tr, err := s.Open(context.Background())
	require.NoError(t, err)

	next, err := s.Send(context.Background(), tr, "hello")
	assert.ErrorIs(t, err, apperrors.ErrRemoteService)
	require.Equal(t, 3, next.Len())

	last, _ := next.Last()
	assert.Equal(t, FallbackText, last.Content)
	assert.Equal(t, MessageTypeError, last.Type)

	assert.Len(t, next.Context(), 2, "fallback is not model memory")
}

func TestSession_SendImage(t *testing.T) {
	sender := &fakeSender{reply: Reply{Text: "It looks like a summons.", Timestamp: serverTime}}
	s := NewSession(sender, UserInfo{})
	tr, _ := s.Open(context.Background())

	next, err := s.SendImage(context.Background(), tr, "aGVsbG8=", "file:///tmp/photo.jpg")
	require.NoError(t, err)

	msgs := next.Messages()
	assert.Equal(t, MessageTypeImage, msgs[1].Type)
	assert.Equal(t, "file:///tmp/photo.jpg", msgs[1].ImageURI)
	assert.Equal(t, ImagePrompt, sender.requests[0].Message)
	assert.Equal(t, "aGVsbG8=", sender.requests[0].Image)

	_, err = s.SendImage(context.Background(), next, "", "")
	assert.Error(t, err)
}

func TestSession_EmptyMessageRejected(t *testing.T) {
	sender := &fakeSender{}
	s := NewSession(sender, UserInfo{})
	tr, _ := s.Open(context.Background())

	same, err := s.Send(context.Background(), tr, "   ")
	assert.Error(t, err)
	assert.Equal(t, tr.Len(), same.Len())
	assert.Empty(t, sender.requests)
}

func TestSession_CloseThenReopen(t *testing.T) {
	sender := &fakeSender{reply: Reply{Text: "r", Timestamp: serverTime}}
	s := NewSession(sender, UserInfo{})

	tr, _ := s.Open(context.Background())
	tr, _ = s.Send(context.Background(), tr, "one")
	require.Equal(t, 3, tr.Len())

	s.Close()
	_, err := s.Send(context.Background(), tr, "two")
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)

	fresh, err := s.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Len())
}

func TestTranscript_AppendDoesNotAlias(t *testing.T) {
	base := NewTranscript(Message{Content: "a"})
	left := base.Append(Message{Content: "b"})
	right := base.Append(Message{Content: "c"})

	assert.Equal(t, "b", left.Messages()[1].Content)
	assert.Equal(t, "c", right.Messages()[1].Content)
	assert.Equal(t, 1, base.Len())

	msgs := left.Messages()
	msgs[0].Content = "mutated"
	assert.Equal(t, "a", left.Messages()[0].Content)

	_, ok := Transcript{}.Last()
	assert.False(t, ok)
}
