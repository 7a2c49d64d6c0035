package postgres

import (
	"context"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository is the constructor for pushSubscriptionRepository.
func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{db: db}
}

// UpsertSubscription stores the token, ignoring tokens that are already known.
func (repo *pushSubscriptionRepository) UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error {
	subM := &model.PushSubscriptionModel{
		ID:        subscription.ID,
		Token:     subscription.Token,
		CreatedAt: subscription.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoNothing: true,
		}).
		Create(subM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save push subscription")
	}

	return nil
}

// ListSubscriptions returns every stored subscription.
func (repo *pushSubscriptionRepository) ListSubscriptions(ctx context.Context) ([]*entity.PushSubscription, error) {
	var subModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list push subscriptions")
	}

	subs := make([]*entity.PushSubscription, 0, len(subModels))
	for _, subM := range subModels {
		subs = append(subs, &entity.PushSubscription{
			ID:        subM.ID,
			Token:     subM.Token,
			CreatedAt: subM.CreatedAt,
		})
	}

	return subs, nil
}

// DeleteByTokens removes the subscriptions owning the given tokens.
func (repo *pushSubscriptionRepository) DeleteByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("token IN ?", tokens).
		Delete(&model.PushSubscriptionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete push subscriptions")
	}

	return nil
}
