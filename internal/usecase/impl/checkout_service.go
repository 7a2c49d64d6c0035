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

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	customerRepo repository.CustomerRepository
	zoneRepo     repository.DeliveryZoneRepository
	orderRepo    repository.OrderRepository
	products     *productResolver
	publisher    service.EventPublisher
	phones       util.PhoneFormat
	tracking     trackingLinks
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	ZoneRepo     repository.DeliveryZoneRepository
	ProductRepo  repository.ProductRepository
	OrderRepo    repository.OrderRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		customerRepo: params.CustomerRepo,
		zoneRepo:     params.ZoneRepo,
		orderRepo:    params.OrderRepo,
		products:     newProductResolver(params.ProductRepo),
		publisher:    params.Publisher,
		phones:       phoneFormat(params.Config),
		tracking:     newTrackingLinks(params.Config),
		logger:       params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *checkoutService) CalculateDeliveryFee(ctx context.Context, cep string) (*usecase.DeliveryFeeQuote, error) {
	zones, err := srv.zoneRepo.ListActiveZones(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list delivery zones")
	}

	return ResolveDeliveryFee(cep, zones)
}

// CreateOrder numbers orders as MAX(order_number)+1 read before the insert. Two concurrent
// checkouts can read the same maximum; the unique index rejects the second insert.
func (srv *checkoutService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	if err := validateCreateOrder(input); err != nil {
		return nil, err
	}

	customer, err := srv.customerRepo.FindByPhone(ctx, srv.phones.Normalize(input.CustomerPhone))
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.ErrCustomerNotRegistered
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find customer")
	}

	var quote usecase.DeliveryFeeQuote
	if input.DeliveryType == entity.DeliveryTypeDelivery {
		cep := input.CEP
		if strings.TrimSpace(cep) == "" {
			cep = customer.CEP
		}
		// No CEP anywhere: the order goes out with a zero fee.
		if strings.TrimSpace(cep) != "" {
			resolved, err := srv.CalculateDeliveryFee(ctx, cep)
			if err != nil {
				return nil, err
			}
			quote = *resolved
		}
	}

	items, subtotal, notFound, err := srv.products.ResolveItems(ctx, input.Items)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve order items")
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrNoItemsResolved.WithDetails("não encontrados: " + strings.Join(notFound, ", "))
	}

	maxNumber, err := srv.orderRepo.MaxOrderNumber(ctx)
	if err != nil {
		return nil, domainerrors.ErrOrderCreationFailed.WrapMessage(err.Error())
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New(),
		OrderNumber:     maxNumber + 1,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.FullAddress(),
		Subtotal:        subtotal,
		DeliveryFee:     quote.Fee,
		Total:           entity.RoundCents(subtotal + quote.Fee),
		PaymentMethod:   input.PaymentMethod,
		ChangeFor:       input.ChangeFor,
		DeliveryType:    input.DeliveryType,
		ZoneName:        quote.ZoneName,
		Status:          entity.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, domainerrors.ErrOrderCreationFailed.WrapMessage(err.Error())
	}

	for _, item := range items {
		item.OrderID = order.ID
	}
	if err := srv.orderRepo.CreateOrderItems(ctx, items); err != nil {
		srv.log(ctx).Error("Order row stored without its items",
			slog.String("order_id", order.ID.String()),
			slog.Int64("order_number", order.OrderNumber),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrOrderItemsNotPersisted.WithDetails(
			"pedido " + order.DisplayNumber() + " (" + order.ID.String() + ")",
		)
	}
	order.Items = items

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.Int64("order_number", order.OrderNumber),
		slog.Float64("total", order.Total),
		slog.Int("unresolved_items", len(notFound)),
	)

	srv.publish(ctx, &service.OrderEvent{
		Type:        service.OrderEventCreated,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Status:      order.Status.String(),
	})

	return &usecase.CreateOrderOutput{
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		Subtotal:     order.Subtotal,
		DeliveryFee:  order.DeliveryFee,
		Total:        order.Total,
		ZoneName:     order.ZoneName,
		TrackingPath: srv.tracking.Path(order.ID),
		TrackingURL:  srv.tracking.URL(order.ID),
		NotFound:     notFound,
	}, nil
}

func (srv *checkoutService) FindOrder(ctx context.Context, ref string) (*entity.Order, error) {
	return findOrderByRef(ctx, srv.orderRepo, ref)
}

// publish never fails the write that triggered it
func (srv *checkoutService) publish(ctx context.Context, event *service.OrderEvent) {
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), event)
}

func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.OrderEvent) {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("type", string(event.Type)),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func validateCreateOrder(input *usecase.CreateOrderInput) error {
	var missing []string
	if strings.TrimSpace(input.CustomerPhone) == "" {
		missing = append(missing, "customer_phone")
	}
	if len(input.Items) == 0 {
		missing = append(missing, "items")
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		missing = append(missing, "payment_method")
	}
	if !input.DeliveryType.IsValid() {
		missing = append(missing, "delivery_type")
	}
	if len(missing) > 0 {
		return domainerrors.ErrMissingOrderField.WithDetails(strings.Join(missing, ", "))
	}

	return nil
}

// findOrderByRef accepts "42", "#42", or an order ID
func findOrderByRef(ctx context.Context, orderRepo repository.OrderRepository, ref string) (*entity.Order, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")

	var (
		order *entity.Order
		err   error
	)
	switch {
	case ref != "" && util.IsDigits(ref):
		number, parseErr := strconv.ParseInt(ref, 10, 64)
		if parseErr != nil {
			return nil, domainerrors.ErrInvalidOrderReference
		}
		order, err = orderRepo.FindOrderByNumber(ctx, number)
	default:
		id, parseErr := uuid.Parse(ref)
		if parseErr != nil {
			return nil, domainerrors.ErrInvalidOrderReference
		}
		order, err = orderRepo.FindOrderByID(ctx, id)
	}

	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return order, nil
}

// trackingLinks builds storefront order tracking links
type trackingLinks struct {
	baseURL string
	prefix  string
}

func newTrackingLinks(cfg *config.Config) trackingLinks {
	return trackingLinks{
		baseURL: strings.TrimSuffix(cfg.Storefront.BaseURL, "/"),
		prefix:  cfg.Storefront.TrackingPathPrefix,
	}
}

func (l trackingLinks) Path(id uuid.UUID) string {
	return l.prefix + id.String()
}

// URL is empty when no storefront base URL is configured
func (l trackingLinks) URL(id uuid.UUID) string {
	if l.baseURL == "" {
		return ""
	}

	return l.baseURL + l.Path(id)
}
