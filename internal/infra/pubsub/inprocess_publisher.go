package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"pedido/internal/domain/service"
)

// inProcessPublisher dispatches events to a handler in the same process.
// Each event runs on its own goroutine detached from the publisher's context.
type inProcessPublisher struct {
	handler service.OrderEventHandler
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewInProcessPublisher creates an EventPublisher that calls handler asynchronously
func NewInProcessPublisher(handler service.OrderEventHandler, logger *slog.Logger) service.EventPublisher {
	return &inProcessPublisher{
		handler: handler,
		logger:  logger,
	}
}

// PublishOrderEvent never blocks on the handler and never reports its failure
func (p *inProcessPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	detached := context.WithoutCancel(ctx)
	evt := *event

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				p.logger.ErrorContext(detached, "[InProcessPubSub] Handler panicked",
					slog.String("order_id", evt.OrderID),
					slog.Any("panic", r),
				)
			}
		}()

		if err := p.handler.HandleOrderEvent(detached, &evt); err != nil {
			p.logger.WarnContext(detached, "[InProcessPubSub] Order event handling failed",
				slog.String("order_id", evt.OrderID),
				slog.String("type", string(evt.Type)),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close waits for in-flight dispatches
func (p *inProcessPublisher) Close() error {
	p.wg.Wait()

	return nil
}
