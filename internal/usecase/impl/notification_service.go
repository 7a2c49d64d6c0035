package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"pedido/config"
	deliverycontext "pedido/internal/delivery/context"
	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/domain/service"
	"pedido/internal/usecase"
	"pedido/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FCM multicast limit
const pushBatchSize = 500

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	pushRepo     repository.PushSubscriptionRepository
	chatRepo     repository.ChatMessageRepository
	gateway      service.MessagingGateway
	pushService  service.PushService
	phones       util.PhoneFormat
	storefront   *config.StorefrontConfig
	logger       *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	SettingsRepo repository.SettingsRepository
	PushRepo     repository.PushSubscriptionRepository
	ChatRepo     repository.ChatMessageRepository
	Gateway      service.MessagingGateway
	PushService  service.PushService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		orderRepo:    params.OrderRepo,
		settingsRepo: params.SettingsRepo,
		pushRepo:     params.PushRepo,
		chatRepo:     params.ChatRepo,
		gateway:      params.Gateway,
		pushService:  params.PushService,
		phones:       phoneFormat(params.Config),
		storefront:   params.Config.Storefront,
		logger:       params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleOrderEvent returns an error only for an unreadable event or a transient read failure
// (wrapping usecase.ErrRetryable). Failed sends are logged and dropped.
func (srv *notificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if event == nil {
		return errors.New("nil order event")
	}
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return errors.Wrapf(err, "invalid order id %q", event.OrderID)
	}

	logger := srv.log(ctx).With(
		slog.String("event_type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		logger.Warn("Order of event not found, dropping")

		return nil
	}
	if err != nil {
		return errors.Wrap(usecase.ErrRetryable, "load order: "+err.Error())
	}

	settings, err := srv.loadSettings(ctx)
	if err != nil {
		return errors.Wrap(usecase.ErrRetryable, "load settings: "+err.Error())
	}

	switch event.Type {
	case service.OrderEventCreated:
		srv.notifyAdmin(ctx, logger, settings, order)
		srv.broadcastPush(ctx, logger, order)
	case service.OrderEventStatusChanged:
		status := entity.OrderStatus(event.Status)
		if !status.IsValid() {
			status = order.Status
		}
		srv.notifyCustomer(ctx, logger, settings, order, status)
	default:
		return errors.Errorf("unknown order event type %q", event.Type)
	}

	return nil
}

// loadSettings treats a missing row as "nothing configured"
func (srv *notificationService) loadSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := srv.settingsRepo.GetSettings(ctx)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return &entity.Settings{}, nil
	}

	return settings, err
}

func (srv *notificationService) notifyAdmin(ctx context.Context, logger *slog.Logger, settings *entity.Settings, order *entity.Order) {
	adminPhone := srv.phones.Normalize(settings.AdminPhone)
	if adminPhone == "" || !settings.HasGateway() {
		logger.Debug("Admin notification skipped, gateway or admin phone not configured")

		return
	}

	if err := srv.gateway.SendText(ctx, settings.Gateway(), adminPhone, AdminOrderSummary(order)); err != nil {
		logger.Error("Failed to notify admin of new order", slog.Any("error", err))

		return
	}
	logger.Info("Admin notified of new order")
}

func (srv *notificationService) broadcastPush(ctx context.Context, logger *slog.Logger, order *entity.Order) {
	subscriptions, err := srv.pushRepo.ListSubscriptions(ctx)
	if err != nil {
		logger.Error("Failed to list push subscriptions", slog.Any("error", err))

		return
	}
	if len(subscriptions) == 0 {
		return
	}

	tokens := make([]string, 0, len(subscriptions))
	for _, sub := range subscriptions {
		tokens = append(tokens, sub.Token)
	}

	msg := &service.PushMessage{
		Title: "Novo pedido " + order.DisplayNumber(),
		Body:  order.CustomerName + " - " + entity.FormatBRL(order.Total),
		Icon:  srv.storefront.PushIcon,
		URL:   srv.storefront.AdminOrdersURL,
		Data: map[string]string{
			"order_id":     order.ID.String(),
			"order_number": strconv.FormatInt(order.OrderNumber, 10),
		},
	}

	var sent, failed int
	var invalid []string
	for start := 0; start < len(tokens); start += pushBatchSize {
		end := min(start+pushBatchSize, len(tokens))

		success, failure, invalidTokens, err := srv.pushService.SendBatchNotification(ctx, tokens[start:end], msg)
		if err != nil {
			logger.Error("Push batch failed", slog.Int("batch_start", start), slog.Any("error", err))
			failed += end - start

			continue
		}
		sent += success
		failed += failure
		invalid = append(invalid, invalidTokens...)
	}

	if len(invalid) > 0 {
		if err := srv.pushRepo.DeleteByTokens(ctx, invalid); err != nil {
			logger.Warn("Failed to prune invalid push tokens", slog.Any("error", err))
		}
	}

	logger.Info("Push broadcast done",
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("pruned", len(invalid)),
	)
}

func (srv *notificationService) notifyCustomer(ctx context.Context, logger *slog.Logger, settings *entity.Settings, order *entity.Order, status entity.OrderStatus) {
	phone := srv.phones.Normalize(order.CustomerPhone)
	text := status.CustomerMessage(order.OrderNumber, order.DeliveryType)

	if phone == "" {
		logger.Debug("Customer notification skipped, order has no phone")

		return
	}

	// The conversation log keeps the update so the assistant knows about it on the next message.
	if err := srv.chatRepo.AppendMessage(ctx, &entity.ChatMessage{
		ID:        uuid.New(),
		Phone:     phone,
		Role:      entity.ChatRoleAssistant,
		Content:   text,
		CreatedAt: time.Now(),
	}); err != nil {
		logger.Warn("Failed to log status message", slog.Any("error", err))
	}

	if !settings.HasGateway() {
		logger.Debug("Customer notification skipped, gateway not configured")

		return
	}
	if err := srv.gateway.SendText(ctx, settings.Gateway(), phone, text); err != nil {
		logger.Error("Failed to notify customer of status change",
			slog.String("status", status.String()),
			slog.Any("error", err),
		)

		return
	}
	logger.Info("Customer notified of status change", slog.String("status", status.String()))
}

func (srv *notificationService) Subscribe(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}

	if err := srv.pushRepo.UpsertSubscription(ctx, &entity.PushSubscription{
		ID:        uuid.New(),
		Token:     token,
		CreatedAt: time.Now(),
	}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store push subscription")
	}

	return nil
}

// AdminOrderSummary is the WhatsApp message the store receives for a new order.
func AdminOrderSummary(order *entity.Order) string {
	var b strings.Builder

	b.WriteString("🔔 *Novo pedido " + order.DisplayNumber() + "*\n\n")
	b.WriteString("👤 Cliente: " + order.CustomerName + "\n")
	b.WriteString("📱 Telefone: " + order.CustomerPhone + "\n")
	if order.DeliveryType == entity.DeliveryTypePickup {
		b.WriteString("🛍️ Retirada no balcão\n")
	} else {
		b.WriteString("🛵 Entrega: " + order.CustomerAddress)
		if order.ZoneName != "" {
			b.WriteString(" (" + order.ZoneName + ")")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n*Itens:*\n")
	for _, item := range order.Items {
		b.WriteString("• " + strconv.Itoa(item.Quantity) + "x " + item.ProductName + " - " + entity.FormatBRL(item.LineTotal()) + "\n")
		for _, modifier := range item.Modifiers {
			b.WriteString("   + " + modifier + "\n")
		}
	}

	b.WriteString("\nSubtotal: " + entity.FormatBRL(order.Subtotal) + "\n")
	if order.DeliveryType == entity.DeliveryTypeDelivery {
		b.WriteString("Taxa de entrega: " + entity.FormatBRL(order.DeliveryFee) + "\n")
	}
	b.WriteString("*Total: " + entity.FormatBRL(order.Total) + "*\n")
	b.WriteString("💳 Pagamento: " + order.PaymentMethod + "\n")
	if order.ChangeFor != nil {
		b.WriteString("💵 Troco para: " + entity.FormatBRL(*order.ChangeFor) + "\n")
	}

	return b.String()
}
