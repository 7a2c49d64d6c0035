package notification

import (
	"context"
	"fmt"
	"log/slog"

	"pedido/config"
	"pedido/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// MaxBatchSize is the FCM multicast limit
const MaxBatchSize = 500

type firebaseService struct {
	client *messaging.Client
}

// noopPushService is used when Firebase is not configured
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.DebugContext(ctx, "[NoopPush] Firebase disabled, skipping broadcast",
		slog.Int("token_count", len(tokens)),
		slog.String("title", msg.Title),
	)

	return 0, 0, nil, nil
}

// Params defines the dependencies of the push service
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService returns a Firebase-backed PushService, or a no-op one when no credentials are configured
func NewPushService(params Params) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &noopPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendBatchNotification sends a web push notification to up to MaxBatchSize tokens
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > MaxBatchSize {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticast(tokens, msg))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	successCount = response.SuccessCount
	failureCount = response.FailureCount

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

func buildMulticast(tokens []string, msg *service.PushMessage) *messaging.MulticastMessage {
	multicast := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: msg.Title,
				Body:  msg.Body,
				Icon:  msg.Icon,
			},
		},
	}
	if msg.URL != "" {
		multicast.Webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: msg.URL}
	}

	return multicast
}
