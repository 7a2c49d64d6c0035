package service

import (
	"context"

	"pedido/internal/domain/entity"
)

// MessagingGateway sends WhatsApp messages through the configured vendor instance.
// Destination is a canonical phone.
type MessagingGateway interface {
	SendText(ctx context.Context, creds entity.GatewayCredentials, destination, body string) error
	SendMedia(ctx context.Context, creds entity.GatewayCredentials, destination, caption, mediaURL string) error
}
