package main

import (
	"context"
	"log/slog"
	"os"

	"pedido/config"
	"pedido/internal/delivery"
	"pedido/internal/delivery/api"
	"pedido/internal/delivery/api/middleware"
	"pedido/internal/delivery/api/router/handler"
	"pedido/internal/domain/service"
	"pedido/internal/infra/auth"
	"pedido/internal/infra/completion"
	logs "pedido/internal/infra/log"
	"pedido/internal/infra/messaging"
	"pedido/internal/infra/notification"
	"pedido/internal/infra/persistence/postgres"
	"pedido/internal/infra/pubsub"
	"pedido/internal/infra/qrcode"
	"pedido/internal/infra/transcription"
	"pedido/internal/usecase"
	"pedido/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewProductRepository,
			postgres.NewDeliveryZoneRepository,
			postgres.NewOrderRepository,
			postgres.NewChatMessageRepository,
			postgres.NewSettingsRepository,
			postgres.NewPushSubscriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			completion.NewOpenAIEngine,
			transcription.NewWhisperTranscriber,
			messaging.NewEvolutionGateway,
			notification.NewPushService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewMenuService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewSettingsService,
			impl.NewAdminService,
			impl.NewConversationService,
			// The in-process publisher hands events straight to the notification service
			fx.Annotate(
				impl.NewNotificationService,
				fx.As(new(usecase.NotificationUsecase), new(service.OrderEventHandler)),
			),
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewChatHandler,
			handler.NewStorefrontHandler,
			handler.NewSubscriptionHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
