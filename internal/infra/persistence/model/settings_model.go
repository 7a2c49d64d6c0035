package model

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsID is the primary key of the single settings row.
const SettingsID = 1

// SettingsModel is the GORM-specific struct for the 'ai_settings' table.
type SettingsModel struct {
	ID               int            `gorm:"primaryKey"`
	CompletionAPIKey string         `gorm:"column:completion_api_key;type:text"`
	CompletionModel  string         `gorm:"type:varchar(120)"`
	SystemPrompt     string         `gorm:"type:text"`
	GatewayURL       string         `gorm:"column:gateway_url;type:text"`
	GatewayAPIKey    string         `gorm:"column:gateway_api_key;type:text"`
	GatewayInstance  string         `gorm:"type:varchar(255)"`
	AdminPhone       string         `gorm:"type:varchar(32)"`
	Active           bool           `gorm:"not null;default:false"`
	OpeningHours     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "ai_settings"
}
