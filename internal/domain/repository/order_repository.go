package repository

import (
	"context"

	"pedido/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when the order number is already taken.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// MaxOrderNumber returns the highest order number, or 0 when there are no orders.
	MaxOrderNumber(ctx context.Context) (int64, error)

	// CreateOrder persists the order row only; items are written by CreateOrderItems.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderItems persists the line items of an existing order.
	CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error

	// DeleteOrderItems removes every line item of an order.
	DeleteOrderItems(ctx context.Context, orderID uuid.UUID) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByNumber retrieves an order with its items by its sequential number.
	FindOrderByNumber(ctx context.Context, number int64) (*entity.Order, error)

	// UpdateOrderStatus sets the status of an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdateOrderTotals rewrites subtotal and total after an item edit.
	UpdateOrderTotals(ctx context.Context, id uuid.UUID, subtotal, total float64) error
}
