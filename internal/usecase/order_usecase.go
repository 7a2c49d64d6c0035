package usecase

import (
	"context"

	"pedido/internal/domain/entity"
)

// ReplaceOrderItemsOutput is the edited order plus the references that matched no product
type ReplaceOrderItemsOutput struct {
	Order    *entity.Order `json:"order"`
	NotFound []string      `json:"not_found,omitempty"`
}

// OrderUsecase defines the back-office order operations
type OrderUsecase interface {
	// UpdateOrderStatus moves the order to status and notifies the customer
	UpdateOrderStatus(ctx context.Context, ref string, status entity.OrderStatus) (*entity.Order, error)

	// ReplaceOrderItems swaps the whole line-item set and recomputes totals
	ReplaceOrderItems(ctx context.Context, ref string, items []OrderLineInput) (*ReplaceOrderItemsOutput, error)

	// GetTrackingQR renders the storefront tracking link of an order as a PNG
	GetTrackingQR(ctx context.Context, ref string) ([]byte, error)
}
