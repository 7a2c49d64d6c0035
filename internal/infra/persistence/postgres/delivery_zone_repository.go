package postgres

import (
	"context"

	"pedido/internal/domain/entity"
	"pedido/internal/domain/repository"
	"pedido/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type deliveryZoneRepository struct {
	db *gorm.DB
}

// NewDeliveryZoneRepository is the constructor for deliveryZoneRepository.
func NewDeliveryZoneRepository(db *gorm.DB) repository.DeliveryZoneRepository {
	return &deliveryZoneRepository{db: db}
}

// ListActiveZones returns active zones, oldest first, so overlapping ranges resolve deterministically.
func (repo *deliveryZoneRepository) ListActiveZones(ctx context.Context) ([]*entity.DeliveryZone, error) {
	var zoneModels []*model.DeliveryZoneModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery zones")
	}

	zones := make([]*entity.DeliveryZone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zones = append(zones, &entity.DeliveryZone{
			ID:           zoneM.ID,
			Name:         zoneM.Name,
			CEPStart:     zoneM.CEPStart,
			CEPEnd:       zoneM.CEPEnd,
			Fee:          zoneM.Fee,
			ExcludedCEPs: zoneM.ExcludedCEPs,
			Active:       zoneM.Active,
			CreatedAt:    zoneM.CreatedAt,
		})
	}

	return zones, nil
}
