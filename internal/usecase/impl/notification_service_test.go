package impl

import (
	"context"
	"fmt"
	"testing"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/domain/service"
	mockRepo "pedido/internal/mocks/repository"
	mockService "pedido/internal/mocks/service"
	"pedido/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service      usecase.NotificationUsecase
	orderRepo    *mockRepo.MockOrderRepository
	settingsRepo *mockRepo.MockSettingsRepository
	pushRepo     *mockRepo.MockPushSubscriptionRepository
	chatRepo     *mockRepo.MockChatMessageRepository
	gateway      *mockService.MockMessagingGateway
	pushService  *mockService.MockPushService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
		pushRepo:     mockRepo.NewMockPushSubscriptionRepository(t),
		chatRepo:     mockRepo.NewMockChatMessageRepository(t),
		gateway:      mockService.NewMockMessagingGateway(t),
		pushService:  mockService.NewMockPushService(t),
	}
	fx.service = NewNotificationService(NotificationServiceParams{
		OrderRepo:    fx.orderRepo,
		SettingsRepo: fx.settingsRepo,
		PushRepo:     fx.pushRepo,
		ChatRepo:     fx.chatRepo,
		Gateway:      fx.gateway,
		PushService:  fx.pushService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func gatewaySettings() *entity.Settings {
	return &entity.Settings{
		Active:          true,
		GatewayURL:      "https://evo.example.com",
		GatewayAPIKey:   "k",
		GatewayInstance: "loja",
		AdminPhone:      "11999990000",
	}
}

func placedOrder() *entity.Order {
	change := 100.0

	return &entity.Order{
		ID:              uuid.New(),
		OrderNumber:     7,
		CustomerName:    "Maria",
		CustomerPhone:   "5511987654321",
		CustomerAddress: "Rua Augusta, 100",
		Subtotal:        91.8,
		DeliveryFee:     8,
		Total:           99.8,
		PaymentMethod:   "dinheiro",
		ChangeFor:       &change,
		DeliveryType:    entity.DeliveryTypeDelivery,
		ZoneName:        "Centro",
		Status:          entity.OrderStatusPending,
		Items: []*entity.OrderItem{
			{ProductName: "Pizza Calabresa", Quantity: 2, Price: 45.9, Modifiers: []string{"sem cebola"}},
		},
	}
}

func TestNotificationService_OrderCreated_NotifiesAdminAndBroadcasts(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	order := placedOrder()
	settings := gatewaySettings()
	subs := []*entity.PushSubscription{{Token: "tok-1"}, {Token: "tok-2"}}
	var summary string
	var pushed *service.PushMessage

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(settings, nil)
	fx.gateway.EXPECT().
		SendText(ctx, settings.Gateway(), "5511999990000", mock.Anything).
		Run(func(_ context.Context, _ entity.GatewayCredentials, _, body string) { summary = body }).
		Return(nil)
	fx.pushRepo.EXPECT().ListSubscriptions(ctx).Return(subs, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1", "tok-2"}, mock.Anything).
		Run(func(_ context.Context, _ []string, msg *service.PushMessage) { pushed = msg }).
		Return(1, 1, []string{"tok-2"}, nil)
	fx.pushRepo.EXPECT().DeleteByTokens(ctx, []string{"tok-2"}).Return(nil)

	err := fx.service.HandleOrderEvent(ctx, &service.OrderEvent{Type: service.OrderEventCreated, OrderID: order.ID.String(), OrderNumber: 7})
	require.NoError(t, err)

	assert.Contains(t, summary, "#7")
	assert.Contains(t, summary, "Maria")
	assert.Contains(t, summary, "2x Pizza Calabresa - R$ 91,80")
	assert.Contains(t, summary, "+ sem cebola")
	assert.Contains(t, summary, "Rua Augusta, 100 (Centro)")
	assert.Contains(t, summary, "Taxa de entrega: R$ 8,00")
	assert.Contains(t, summary, "Total: R$ 99,80")
	assert.Contains(t, summary, "Troco para: R$ 100,00")

	require.NotNil(t, pushed)
	assert.Equal(t, "Novo pedido #7", pushed.Title)
	assert.Equal(t, "https://loja.example.com/icon.png", pushed.Icon)
	assert.Equal(t, order.ID.String(), pushed.Data["order_id"])
}

func TestNotificationService_OrderCreated_BatchesOf500(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	order := placedOrder()
	settings := &entity.Settings{}
	subs := make([]*entity.PushSubscription, 1201)
	for i := range subs {
		subs[i] = &entity.PushSubscription{Token: fmt.Sprintf("tok-%d", i)}
	}
	var batchSizes []int

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(settings, nil)
	fx.pushRepo.EXPECT().ListSubscriptions(ctx).Return(subs, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, tokens []string, _ *service.PushMessage) { batchSizes = append(batchSizes, len(tokens)) }).
		Return(500, 0, nil, nil)

	err := fx.service.HandleOrderEvent(ctx, &service.OrderEvent{Type: service.OrderEventCreated, OrderID: order.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, []int{500, 500, 201}, batchSizes)
	fx.gateway.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_OrderCreated_GatewayFailureIsSwallowed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	order := placedOrder()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(gatewaySettings(), nil)
	fx.gateway.EXPECT().SendText(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("instance disconnected"))
	fx.pushRepo.EXPECT().ListSubscriptions(ctx).Return(nil, nil)

	err := fx.service.HandleOrderEvent(ctx, &service.OrderEvent{Type: service.OrderEventCreated, OrderID: order.ID.String()})
	assert.NoError(t, err)
}

func TestNotificationService_StatusChanged_NotifiesCustomer(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	order := placedOrder()
	order.Status = entity.OrderStatusOutForDelivery
	settings := gatewaySettings()
	var logged *entity.ChatMessage

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(settings, nil)
	fx.chatRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Run(func(_ context.Context, message *entity.ChatMessage) { logged = message }).
		Return(nil)
	fx.gateway.EXPECT().
		SendText(ctx, settings.Gateway(), "5511987654321", "Seu pedido #7 saiu para entrega! O entregador está a caminho. 🛵").
		Return(nil)

	err := fx.service.HandleOrderEvent(ctx, &service.OrderEvent{
		Type:    service.OrderEventStatusChanged,
		OrderID: order.ID.String(),
		Status:  string(entity.OrderStatusOutForDelivery),
	})
	require.NoError(t, err)

	require.NotNil(t, logged)
	assert.Equal(t, entity.ChatRoleAssistant, logged.Role)
	assert.Equal(t, "5511987654321", logged.Phone)
	assert.Contains(t, logged.Content, "saiu para entrega")
}

func TestNotificationService_StatusChanged_OrderWithoutPhone(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	order := placedOrder()
	order.CustomerPhone = ""

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(gatewaySettings(), nil)

	err := fx.service.HandleOrderEvent(ctx, &service.OrderEvent{
		Type:    service.OrderEventStatusChanged,
		OrderID: order.ID.String(),
		Status:  string(entity.OrderStatusApproved),
	})
	require.NoError(t, err)
	fx.chatRepo.AssertNotCalled(t, "AppendMessage", mock.Anything, mock.Anything)
	fx.gateway.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_StatusChanged_ReadyCopyDependsOnDeliveryType(t *testing.T) {
	for _, tt := range []struct {
		deliveryType entity.DeliveryType
		want         string
	}{
		{entity.DeliveryTypePickup, "pronto para retirada"},
		{entity.DeliveryTypeDelivery, "logo sairá para entrega"},
	} {
		t.Run(string(tt.deliveryType), func(t *testing.T) {
			fx := createTestNotificationService(t)

			ctx := context.Background()
			order := placedOrder()
			order.DeliveryType = tt.deliveryType

			fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
			fx.settingsRepo.EXPECT().GetSettings(ctx).Return(gatewaySettings(), nil)
			fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil)
			fx.gateway.EXPECT().
				SendText(ctx, mock.Anything, "5511987654321", mock.MatchedBy(func(body string) bool {
					return assert.Contains(t, body, tt.want)
				})).
				Return(nil)

			err := fx.service.HandleOrderEvent(ctx, &service.OrderEvent{
				Type:    service.OrderEventStatusChanged,
				OrderID: order.ID.String(),
				Status:  string(entity.OrderStatusReady),
			})
			require.NoError(t, err)
		})
	}
}

func TestNotificationService_HandleOrderEvent_Errors(t *testing.T) {
	t.Run("unreadable order id", func(t *testing.T) {
		fx := createTestNotificationService(t)

		err := fx.service.HandleOrderEvent(context.Background(), &service.OrderEvent{Type: service.OrderEventCreated, OrderID: "nope"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrRetryable)
	})

	t.Run("transient repository failure is retryable", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.orderRepo.EXPECT().FindOrderByID(ctx, id).Return(nil, errors.New("connection reset"))

		err := fx.service.HandleOrderEvent(ctx, &service.OrderEvent{Type: service.OrderEventCreated, OrderID: id.String()})
		assert.ErrorIs(t, err, usecase.ErrRetryable)
	})

	t.Run("deleted order is dropped", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.orderRepo.EXPECT().FindOrderByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

		err := fx.service.HandleOrderEvent(ctx, &service.OrderEvent{Type: service.OrderEventCreated, OrderID: id.String()})
		assert.NoError(t, err)
	})

	t.Run("missing settings row means nothing configured", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		order := placedOrder()

		fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
		fx.settingsRepo.EXPECT().GetSettings(ctx).Return(nil, repository.ErrSettingsNotFound)
		fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil)

		err := fx.service.HandleOrderEvent(ctx, &service.OrderEvent{Type: service.OrderEventStatusChanged, OrderID: order.ID.String(), Status: "approved"})
		assert.NoError(t, err)
	})
}

func TestNotificationService_Subscribe(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.pushRepo.EXPECT().
		UpsertSubscription(ctx, mock.MatchedBy(func(sub *entity.PushSubscription) bool { return sub.Token == "fcm-token" })).
		Return(nil)

	require.NoError(t, fx.service.Subscribe(ctx, " fcm-token "))
	assert.ErrorIs(t, fx.service.Subscribe(ctx, ""), domainerrors.ErrValidationFailed)
}

func TestAdminOrderSummary_Pickup(t *testing.T) {
	order := placedOrder()
	order.DeliveryType = entity.DeliveryTypePickup
	order.ChangeFor = nil

	summary := AdminOrderSummary(order)
	assert.Contains(t, summary, "Retirada no balcão")
	assert.NotContains(t, summary, "Taxa de entrega")
	assert.NotContains(t, summary, "Troco")
}
