package repository

import (
	"context"

	"pedido/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned when the settings row has not been created yet.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository reads and writes the single integration settings row.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*entity.Settings, error)
	SaveSettings(ctx context.Context, settings *entity.Settings) error
}
