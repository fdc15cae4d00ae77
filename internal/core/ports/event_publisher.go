package ports

import (
	"context"

	"swiftbid/internal/core/domain/events"
)

// EventPublisher delivers domain events to interested parties outside the
// transaction. Handlers call Publish only after a successful commit, so
// subscribers never observe state that was rolled back. Publish failures are
// logged and swallowed by callers: notification delivery is best-effort and
// must not fail the business operation.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DeliveryStatusChanged) error
}
