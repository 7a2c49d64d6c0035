package repository

import (
	"context"

	"pedido/internal/domain/entity"
)

// PushSubscriptionRepository stores browser push tokens.
type PushSubscriptionRepository interface {
	// UpsertSubscription stores the token, keeping the existing row when it is already known.
	UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error

	// ListSubscriptions returns every stored subscription.
	ListSubscriptions(ctx context.Context) ([]*entity.PushSubscription, error)

	// DeleteByTokens removes the subscriptions owning the given tokens.
	DeleteByTokens(ctx context.Context, tokens []string) error
}
