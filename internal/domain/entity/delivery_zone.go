package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeliveryZone prices delivery for a postal-code (CEP) range.
type DeliveryZone struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CEPStart     string    `json:"cep_start"`
	CEPEnd       string    `json:"cep_end"`
	Fee          float64   `json:"fee"`
	ExcludedCEPs string    `json:"excluded_ceps"` // Comma separated list, stored as typed.
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Exclusions splits ExcludedCEPs into trimmed, non-empty entries.
func (z *DeliveryZone) Exclusions() []string {
	if strings.TrimSpace(z.ExcludedCEPs) == "" {
		return nil
	}

	raw := strings.Split(z.ExcludedCEPs, ",")
	out := make([]string, 0, len(raw))
	for _, cep := range raw {
		if cep = strings.TrimSpace(cep); cep != "" {
			out = append(out, cep)
		}
	}

	return out
}
