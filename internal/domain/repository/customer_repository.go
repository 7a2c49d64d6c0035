// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pedido/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when no customer has the given phone or ID.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when another customer already owns the phone.
	ErrDuplicateCustomer = errors.New("customer phone already exists")
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// FindByPhone retrieves a customer by canonical phone.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// CreateCustomer persists a new customer and fills generated fields.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// UpdateCustomerFields writes only the given columns (snake_case name -> value).
	UpdateCustomerFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
}
