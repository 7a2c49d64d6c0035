package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber     int64            `gorm:"not null;uniqueIndex"`
	CustomerID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerName    string           `gorm:"type:varchar(255)"`
	CustomerPhone   string           `gorm:"type:varchar(32);index"`
	CustomerAddress string           `gorm:"type:text"`
	Subtotal        float64          `gorm:"type:numeric(10,2);not null"`
	DeliveryFee     float64          `gorm:"type:numeric(10,2);not null;default:0"`
	Total           float64          `gorm:"type:numeric(10,2);not null"`
	PaymentMethod   string           `gorm:"type:varchar(64);not null"`
	ChangeFor       *float64         `gorm:"type:numeric(10,2)"`
	DeliveryType    string           `gorm:"type:varchar(16);not null"`
	ZoneName        string           `gorm:"type:varchar(255)"`
	Status          string           `gorm:"type:varchar(32);not null;default:'pending';index"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID                   `gorm:"type:uuid;not null"`
	ProductName string                      `gorm:"type:varchar(255);not null"`
	Quantity    int                         `gorm:"not null"`
	Price       float64                     `gorm:"type:numeric(10,2);not null"`
	Modifiers   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
