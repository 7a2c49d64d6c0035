package usecase

import (
	"context"

	"pedido/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput references a product by ID or free-text name
type OrderLineInput struct {
	ProductRef string   `json:"product" validate:"required"`
	Quantity   int      `json:"quantity"`
	Modifiers  []string `json:"modifiers,omitempty"`
}

// CreateOrderInput is a checkout request
type CreateOrderInput struct {
	CustomerPhone string              `json:"customer_phone"`
	Items         []OrderLineInput    `json:"items"`
	PaymentMethod string              `json:"payment_method"`
	ChangeFor     *float64            `json:"change_for,omitempty"`
	CEP           string              `json:"cep,omitempty"`
	DeliveryType  entity.DeliveryType `json:"delivery_type"`
}

// CreateOrderOutput is the checkout result. NotFound lists the references that matched no product.
type CreateOrderOutput struct {
	OrderID      uuid.UUID `json:"order_id"`
	OrderNumber  int64     `json:"order_number"`
	Subtotal     float64   `json:"subtotal"`
	DeliveryFee  float64   `json:"delivery_fee"`
	Total        float64   `json:"total"`
	ZoneName     string    `json:"zone_name,omitempty"`
	TrackingPath string    `json:"tracking_path"`
	TrackingURL  string    `json:"tracking_url,omitempty"`
	NotFound     []string  `json:"not_found,omitempty"`
}

// DeliveryFeeQuote is the fee for a CEP. NoZonesConfigured marks free delivery because no zone exists.
type DeliveryFeeQuote struct {
	Fee               float64 `json:"fee"`
	ZoneName          string  `json:"zone_name,omitempty"`
	NoZonesConfigured bool    `json:"no_zones_configured,omitempty"`
}

// CheckoutUsecase defines the order-taking operations
type CheckoutUsecase interface {
	// CalculateDeliveryFee prices delivery for a CEP against the active zones
	CalculateDeliveryFee(ctx context.Context, cep string) (*DeliveryFeeQuote, error)

	// CreateOrder validates, prices, numbers, and persists an order
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error)

	// FindOrder loads an order by number ("42", "#42") or ID
	FindOrder(ctx context.Context, ref string) (*entity.Order, error)
}
