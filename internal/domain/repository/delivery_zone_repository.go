package repository

import (
	"context"

	"pedido/internal/domain/entity"
)

// DeliveryZoneRepository gives fresh reads of delivery pricing.
type DeliveryZoneRepository interface {
	// ListActiveZones returns active zones ordered by creation time, oldest first.
	ListActiveZones(ctx context.Context) ([]*entity.DeliveryZone, error)
}
