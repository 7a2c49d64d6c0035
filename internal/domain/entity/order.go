package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryType tells whether an order is delivered or picked up at the store.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// IsValid checks if the DeliveryType is a known value.
func (d DeliveryType) IsValid() bool {
	return d == DeliveryTypeDelivery || d == DeliveryTypePickup
}

// Order is a placed order. Customer fields are a snapshot taken at creation time.
type Order struct {
	ID              uuid.UUID    `json:"id"`
	OrderNumber     int64        `json:"order_number"`
	CustomerID      uuid.UUID    `json:"customer_id"`
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerAddress string       `json:"customer_address"`
	Subtotal        float64      `json:"subtotal"`
	DeliveryFee     float64      `json:"delivery_fee"`
	Total           float64      `json:"total"`
	PaymentMethod   string       `json:"payment_method"`
	ChangeFor       *float64     `json:"change_for,omitempty"`
	DeliveryType    DeliveryType `json:"delivery_type"`
	ZoneName        string       `json:"zone_name,omitempty"`
	Status          OrderStatus  `json:"status"`
	Items           []*OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// OrderItem is a line of an order. Name and price are snapshots of the product at order time.
type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Modifiers   []string  `json:"modifiers,omitempty"`
}

// LineTotal returns price times quantity.
func (i *OrderItem) LineTotal() float64 {
	return RoundCents(i.Price * float64(i.Quantity))
}
