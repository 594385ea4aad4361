package delivery

import (
	"context"

	"github.com/Vovarama1992/legalmate/internal/checklist"
)

type ChecklistGenerator interface {
	Generate(ctx context.Context, transcription string) (checklist.Checklist, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioRef string) (string, error)
}
