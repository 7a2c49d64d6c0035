package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryZoneModel is the GORM-specific struct for the 'delivery_zones' table.
type DeliveryZoneModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	CEPStart     string    `gorm:"column:cep_start;type:varchar(16);not null"`
	CEPEnd       string    `gorm:"column:cep_end;type:varchar(16);not null"`
	Fee          float64   `gorm:"type:numeric(10,2);not null;default:0"`
	ExcludedCEPs string    `gorm:"column:excluded_ceps;type:text"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryZoneModel) TableName() string {
	return "delivery_zones"
}
