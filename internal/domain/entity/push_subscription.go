package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is a browser registered for order alerts (FCM web-push token).
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
