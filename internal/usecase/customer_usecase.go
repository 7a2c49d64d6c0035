// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"pedido/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterCustomerInput carries the profile fields collected in a conversation.
// Empty fields mean "not supplied" and never overwrite stored values.
type RegisterCustomerInput struct {
	Phone        string `json:"phone" validate:"required"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	CEP          string `json:"cep"`
}

// RegisterCustomerOutput reports whether the phone was already known.
// SavedData is the merged record and is only set for existing customers.
type RegisterCustomerOutput struct {
	Exists    bool             `json:"exists"`
	ID        uuid.UUID        `json:"id"`
	SavedData *entity.Customer `json:"saved_data,omitempty"`
}

// CustomerUsecase defines the customer registry operations
type CustomerUsecase interface {
	// RegisterCustomer creates the customer or merges the non-empty changed fields into it
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*RegisterCustomerOutput, error)

	// FindCustomer looks a customer up by any phone form
	FindCustomer(ctx context.Context, phone string) (*entity.Customer, error)
}
