package notificator

import "context"

type Notificator interface {
	// Notify sends an operator alert about a failed provider call.
	Notify(ctx context.Context, source string, err error, details string) error
}
