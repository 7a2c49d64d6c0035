package repository

import (
	"context"

	"pedido/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when no available product matches.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read-only catalog view used by ordering.
type ProductRepository interface {
	// FindAvailableByID retrieves an available product by ID.
	FindAvailableByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindFirstAvailableByName returns the first available product (by name) whose name contains
	// term, case-insensitively.
	FindFirstAvailableByName(ctx context.Context, term string) (*entity.Product, error)

	// ListAvailable returns every available product ordered by category then name.
	ListAvailable(ctx context.Context) ([]*entity.Product, error)
}
