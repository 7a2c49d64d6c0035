package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pedido/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 10 * time.Second
	localMaxAttempts    = 3
	localRetryBackoff   = 500 * time.Millisecond
	localSubscription   = "projects/local/subscriptions/order-events-push"
)

// errWorkerBusy marks a worker answer that asks for redelivery
var errWorkerBusy = errors.New("worker asked for redelivery")

// localHTTPPublisher posts Pub/Sub-shaped push envelopes straight to the notification worker.
// Like a push subscription it redelivers when the worker answers 503 or is unreachable.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	backoff    time.Duration
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: localPublishTimeout,
		},
		backoff: localRetryBackoff,
		logger:  logger,
	}
}

// PublishOrderEvent wraps the event in a push envelope and posts it to the worker
func (p *localHTTPPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := pushEnvelope(event)
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		err = p.post(ctx, event, body)
		if err == nil {
			p.logger.InfoContext(ctx, "[LocalPubSub] Order event delivered",
				slog.String("endpoint", p.endpoint),
				slog.String("order_id", event.OrderID),
				slog.String("type", string(event.Type)),
				slog.Int("attempt", attempt),
			)

			return nil
		}

		var permanent *permanentStatusError
		if errors.As(err, &permanent) || attempt == localMaxAttempts {
			return err
		}

		p.logger.WarnContext(ctx, "[LocalPubSub] Redelivering order event",
			slog.String("order_id", event.OrderID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}
}

// permanentStatusError is any non-2xx answer other than 503; redelivery would not help
type permanentStatusError struct {
	status int
}

func (e *permanentStatusError) Error() string {
	return "worker rejected order event with status " + strconv.Itoa(e.status)
}

func (p *localHTTPPublisher) post(ctx context.Context, event *service.OrderEvent, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusServiceUnavailable:
		return errors.WithStack(errWorkerBusy)
	default:
		return &permanentStatusError{status: resp.StatusCode}
	}
}

func pushEnvelope(event *service.OrderEvent) ([]byte, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)

	return body, errors.WithStack(err)
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
