package speech

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Vovarama1992/legalmate/internal/ai"
	"github.com/Vovarama1992/legalmate/internal/notificator"
	"github.com/dustin/go-humanize"
)

type Service struct {
	stt      STTClient
	provider string
	notifier notificator.Notificator
}

func NewService(stt STTClient, provider string, notifier notificator.Notificator) *Service {
	if notifier == nil {
		notifier = notificator.Noop{}
	}
	return &Service{
		stt:      stt,
		provider: provider,
		notifier: notifier,
	}
}

// Transcribe expects a fully written recording; it makes one provider call
// and never retries.
func (s *Service) Transcribe(ctx context.Context, audioRef string) (string, error) {
	info, err := os.Stat(audioRef)
	if err != nil {
		return "", fmt.Errorf("audio %s: %w", audioRef, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("audio %s: is a directory", audioRef)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("audio %s: file is empty", audioRef)
	}

	start := time.Now()
	log.Printf("[speech] transcribe provider=%s size=%s", s.provider, humanize.Bytes(uint64(info.Size())))

	text, err := s.stt.Transcribe(ctx, audioRef)
	if err != nil {
		log.Printf("[speech][%.1fs] transcribe fail provider=%s err=%v", time.Since(start).Seconds(), s.provider, err)
		_ = s.notifier.Notify(ctx, "speech", err,
			fmt.Sprintf("Provider: %s\n%s", s.provider, ai.Diagnose(err)))
		return "", fmt.Errorf("transcribe: %w", err)
	}

	log.Printf("[speech][%.1fs] transcribed chars=%d", time.Since(start).Seconds(), len(text))
	return text, nil
}
