// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a person who orders through the storefront or the chat assistant.
// Phone holds the canonical (country and area code qualified) digits and is the natural key.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	Phone        string    `json:"phone"`
	Name         string    `json:"name"`
	Address      string    `json:"address"` // Free-form address as typed by the customer.
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	CEP          string    `json:"cep"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullAddress returns the free-form address when present, otherwise the structured fields joined.
func (c *Customer) FullAddress() string {
	if c.Address != "" {
		return c.Address
	}

	parts := make([]string, 0, 6)
	street := c.Street
	if street != "" && c.Number != "" {
		street += ", " + c.Number
	}
	for _, part := range []string{street, c.Complement, c.Neighborhood, c.City, c.State, c.CEP} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " - ")
}
