package impl

import (
	"context"
	"log/slog"

	"pedido/config"
	deliverycontext "pedido/internal/delivery/context"
	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/domain/service"
	"pedido/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
	txManager repository.TransactionManager
	products  *productResolver
	publisher service.EventPublisher
	qrCodes   service.QRCodeService
	tracking  trackingLinks
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	QRCodes     service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		txManager: params.TxManager,
		products:  newProductResolver(params.ProductRepo),
		publisher: params.Publisher,
		qrCodes:   params.QRCodes,
		tracking:  newTrackingLinks(params.Config),
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) UpdateOrderStatus(ctx context.Context, ref string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(string(status))
	}

	order, err := findOrderByRef(ctx, srv.orderRepo, ref)
	if err != nil {
		return nil, err
	}

	if order.Status == status {
		return order, nil
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(order.Status.String() + " -> " + status.String())
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, order.ID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}

	previous := order.Status
	order.Status = status

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", order.ID.String()),
		slog.String("from", previous.String()),
		slog.String("to", status.String()),
	)

	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), &service.OrderEvent{
		Type:        service.OrderEventStatusChanged,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Status:      status.String(),
	})

	return order, nil
}

// ReplaceOrderItems swaps the item set and totals atomically; the delivery fee is kept.
func (srv *orderService) ReplaceOrderItems(ctx context.Context, ref string, lines []usecase.OrderLineInput) (*usecase.ReplaceOrderItemsOutput, error) {
	if len(lines) == 0 {
		return nil, domainerrors.ErrMissingOrderField.WithDetails("items")
	}

	order, err := findOrderByRef(ctx, srv.orderRepo, ref)
	if err != nil {
		return nil, err
	}

	items, subtotal, notFound, err := srv.products.ResolveItems(ctx, lines)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve order items")
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrNoItemsResolved
	}
	for _, item := range items {
		item.OrderID = order.ID
	}
	total := entity.RoundCents(subtotal + order.DeliveryFee)

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		txOrderRepo := txRepoFactory.NewOrderRepository()

		if err := txOrderRepo.DeleteOrderItems(ctx, order.ID); err != nil {
			return errors.Wrap(err, "delete order items")
		}
		if err := txOrderRepo.CreateOrderItems(ctx, items); err != nil {
			return errors.Wrap(err, "create order items")
		}
		if err := txOrderRepo.UpdateOrderTotals(ctx, order.ID, subtotal, total); err != nil {
			return errors.Wrap(err, "update order totals")
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	order.Items = items
	order.Subtotal = subtotal
	order.Total = total

	srv.log(ctx).Info("Order items replaced",
		slog.String("order_id", order.ID.String()),
		slog.Int("items", len(items)),
		slog.Float64("total", total),
	)

	return &usecase.ReplaceOrderItemsOutput{Order: order, NotFound: notFound}, nil
}

func (srv *orderService) GetTrackingQR(ctx context.Context, ref string) ([]byte, error) {
	order, err := findOrderByRef(ctx, srv.orderRepo, ref)
	if err != nil {
		return nil, err
	}

	link := srv.tracking.URL(order.ID)
	if link == "" {
		return nil, domainerrors.ErrNotFound.WithDetails("storefront base url not configured")
	}

	png, err := srv.qrCodes.GenerateURLQR(link)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}
