package impl

import (
	"context"
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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	txOrderRepo *mockRepo.MockOrderRepository
	txManager   *mockRepo.MockTransactionManager
	txFactory   *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	publisher   *mockService.MockEventPublisher
	qrCodes     *mockService.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		txOrderRepo: mockRepo.NewMockOrderRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		txFactory:   mockRepo.NewMockRepositoryFactory(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
		qrCodes:     mockService.NewMockQRCodeService(t),
	}
	fx.service = NewOrderService(OrderServiceParams{
		OrderRepo:   fx.orderRepo,
		TxManager:   fx.txManager,
		ProductRepo: fx.productRepo,
		Publisher:   fx.publisher,
		QRCodes:     fx.qrCodes,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

// expectTransaction runs the transactional callback against the tx-bound mocks.
func (fx orderServiceFixtures) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
	fx.txFactory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: 12, Status: entity.OrderStatusReady, DeliveryType: entity.DeliveryTypeDelivery}

	fx.orderRepo.EXPECT().FindOrderByNumber(ctx, int64(12)).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusOutForDelivery).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, &service.OrderEvent{
			Type:        service.OrderEventStatusChanged,
			OrderID:     order.ID.String(),
			OrderNumber: 12,
			Status:      "out_for_delivery",
		}).
		Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, "#12", entity.OrderStatusOutForDelivery)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusOutForDelivery, updated.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), "12", entity.OrderStatus("shipped"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateOrderStatus_PublishFailureStillSucceeds(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: 3, Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusApproved).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID.String(), entity.OrderStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, updated.Status)
}

func TestOrderService_UpdateOrderStatus_SameStatusIsNoop(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: 5, Status: entity.OrderStatusPreparing}

	fx.orderRepo.EXPECT().FindOrderByNumber(ctx, int64(5)).Return(order, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, "5", entity.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, updated.Status)
	fx.orderRepo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_FinishedOrderStaysPut(t *testing.T) {
	for _, from := range []entity.OrderStatus{entity.OrderStatusDelivered, entity.OrderStatusCancelled} {
		t.Run(from.String(), func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			order := &entity.Order{ID: uuid.New(), OrderNumber: 8, Status: from}

			fx.orderRepo.EXPECT().FindOrderByNumber(ctx, int64(8)).Return(order, nil)

			_, err := fx.service.UpdateOrderStatus(ctx, "8", entity.OrderStatusPending)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
			fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_UpdateOrderStatus_StaffMayStepBack(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: 9, Status: entity.OrderStatusReady}

	fx.orderRepo.EXPECT().FindOrderByNumber(ctx, int64(9)).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPreparing).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, "9", entity.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, updated.Status)
}

func TestOrderService_ReplaceOrderItems(t *testing.T) {
	fx := createTestOrderService(t)
	fx.expectTransaction()

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: 5, Subtotal: 45.9, DeliveryFee: 8, Total: 53.9}
	product := &entity.Product{ID: uuid.New(), Name: "Portuguesa", Price: 50}

	fx.orderRepo.EXPECT().FindOrderByNumber(ctx, int64(5)).Return(order, nil)
	fx.productRepo.EXPECT().FindFirstAvailableByName(ctx, "portuguesa").Return(product, nil)
	fx.productRepo.EXPECT().FindFirstAvailableByName(ctx, "esfiha").Return(nil, repository.ErrProductNotFound)
	fx.txOrderRepo.EXPECT().DeleteOrderItems(ctx, order.ID).Return(nil)
	fx.txOrderRepo.EXPECT().
		CreateOrderItems(ctx, mock.MatchedBy(func(items []*entity.OrderItem) bool {
			return len(items) == 1 && items[0].OrderID == order.ID && items[0].Quantity == 2
		})).
		Return(nil)
	fx.txOrderRepo.EXPECT().UpdateOrderTotals(ctx, order.ID, 100.0, 108.0).Return(nil)

	out, err := fx.service.ReplaceOrderItems(ctx, "5", []usecase.OrderLineInput{
		{ProductRef: "portuguesa", Quantity: 2},
		{ProductRef: "esfiha", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Order.Subtotal)
	assert.Equal(t, 108.0, out.Order.Total)
	assert.Equal(t, []string{"esfiha"}, out.NotFound)
}

func TestOrderService_ReplaceOrderItems_RollsBackOnFailure(t *testing.T) {
	fx := createTestOrderService(t)
	fx.expectTransaction()

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: 5}

	fx.orderRepo.EXPECT().FindOrderByNumber(ctx, int64(5)).Return(order, nil)
	fx.productRepo.EXPECT().FindFirstAvailableByName(ctx, "portuguesa").Return(&entity.Product{ID: uuid.New(), Price: 50}, nil)
	fx.txOrderRepo.EXPECT().DeleteOrderItems(ctx, order.ID).Return(nil)
	fx.txOrderRepo.EXPECT().CreateOrderItems(ctx, mock.Anything).Return(errors.New("constraint"))

	_, err := fx.service.ReplaceOrderItems(ctx, "5", []usecase.OrderLineInput{{ProductRef: "portuguesa"}})
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	fx.txOrderRepo.AssertNotCalled(t, "UpdateOrderTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_ReplaceOrderItems_NothingResolved(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: 5}

	fx.orderRepo.EXPECT().FindOrderByNumber(ctx, int64(5)).Return(order, nil)
	fx.productRepo.EXPECT().FindFirstAvailableByName(ctx, mock.Anything).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.ReplaceOrderItems(ctx, "5", []usecase.OrderLineInput{{ProductRef: "esfiha"}})
	assert.ErrorIs(t, err, domainerrors.ErrNoItemsResolved)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_GetTrackingQR(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: 9}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderRepo.EXPECT().FindOrderByNumber(ctx, int64(9)).Return(order, nil)
	fx.qrCodes.EXPECT().GenerateURLQR("https://loja.example.com/pedido/"+order.ID.String()).Return(png, nil)

	got, err := fx.service.GetTrackingQR(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
