package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Phone        string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255)"`
	Address      string    `gorm:"type:text"`
	Street       string    `gorm:"type:varchar(255)"`
	Number       string    `gorm:"type:varchar(32)"`
	Complement   string    `gorm:"type:varchar(255)"`
	Neighborhood string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(255)"`
	State        string    `gorm:"type:varchar(64)"`
	CEP          string    `gorm:"column:cep;type:varchar(16)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
