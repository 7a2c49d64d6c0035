package usecase

import (
	"context"

	"pedido/internal/domain/entity"
	"pedido/internal/domain/service"

	"github.com/google/uuid"
)

// InboundMessage is one message from a customer.
// WhatsApp messages carry RemoteJID; web messages carry SessionID and optionally Phone.
type InboundMessage struct {
	Channel   entity.Channel
	RemoteJID string
	Phone     string
	SessionID string
	Text      string
	Audio     *service.AudioPayload
}

// CartLine is an item the assistant asked the web storefront to add to the cart
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Modifiers []string  `json:"modifiers,omitempty"`
}

// ConversationReply is the outcome of one inbound message.
// Skipped means the assistant is off and nothing was sent.
type ConversationReply struct {
	Skipped  bool       `json:"skipped,omitempty"`
	Identity string     `json:"-"`
	Reply    string     `json:"reply"`
	Cart     []CartLine `json:"cart,omitempty"`
}

// ConversationUsecase defines the chat assistant entry point
type ConversationUsecase interface {
	HandleMessage(ctx context.Context, msg *InboundMessage) (*ConversationReply, error)
}
