package notificator

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
)

type Service struct {
	infra Notificator
	log   *logger.ZapLogger
}

func NewService(infra Notificator, log *logger.ZapLogger) *Service {
	if infra == nil {
		infra = Noop{}
	}
	return &Service{infra: infra, log: log}
}

// Notify never blocks the caller on alert delivery problems; they are only logged.
func (s *Service) Notify(ctx context.Context, source string, err error, details string) error {
	sendErr := s.infra.Notify(ctx, source, err, details)
	if sendErr != nil && s.log != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "admin alert not delivered: " + source,
			Service: "notificator",
			Error:   sendErr,
		})
	}
	return sendErr
}

// Noop is used when no alert channel is configured.
type Noop struct{}

func (Noop) Notify(context.Context, string, error, string) error { return nil }
