package speech

import "context"

// STTClient turns a finished audio file into text.
type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}
