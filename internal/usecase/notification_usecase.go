package usecase

import (
	"context"

	"pedido/internal/domain/service"

	"github.com/pkg/errors"
)

// NotificationUsecase defines the notification dispatcher operations
type NotificationUsecase interface {
	// HandleOrderEvent dispatches the messages for one order event.
	// Delivery failures are logged, not returned.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error

	// Subscribe registers a browser push token for new-order alerts
	Subscribe(ctx context.Context, token string) error
}

// ErrRetryable marks an event that failed for a transient reason and should be redelivered
var ErrRetryable = errors.New("order event should be retried")
