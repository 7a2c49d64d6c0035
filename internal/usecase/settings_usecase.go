package usecase

import (
	"context"

	"pedido/internal/domain/entity"
)

// UpdateSettingsInput is a partial update; nil fields are left unchanged
type UpdateSettingsInput struct {
	CompletionAPIKey *string              `json:"completion_api_key"`
	CompletionModel  *string              `json:"completion_model"`
	SystemPrompt     *string              `json:"system_prompt"`
	GatewayURL       *string              `json:"gateway_url" validate:"omitempty,url"`
	GatewayAPIKey    *string              `json:"gateway_api_key"`
	GatewayInstance  *string              `json:"gateway_instance"`
	AdminPhone       *string              `json:"admin_phone"`
	Active           *bool                `json:"active"`
	OpeningHours     *entity.OpeningHours `json:"opening_hours"`
}

// SettingsUsecase defines the integration settings operations
type SettingsUsecase interface {
	GetSettings(ctx context.Context) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error)
}
