package postgres

import (
	"context"
	"encoding/json"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetSettings reads the single settings row.
func (repo *settingsRepository) GetSettings(ctx context.Context) (*entity.Settings, error) {
	var settingsM model.SettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", model.SettingsID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to load settings")
	}

	return toSettingsDomain(&settingsM)
}

// SaveSettings upserts the single settings row.
func (repo *settingsRepository) SaveSettings(ctx context.Context, settings *entity.Settings) error {
	settingsM, err := fromSettingsDomain(settings)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

func toSettingsDomain(data *model.SettingsModel) (*entity.Settings, error) {
	settings := &entity.Settings{
		CompletionAPIKey: data.CompletionAPIKey,
		CompletionModel:  data.CompletionModel,
		SystemPrompt:     data.SystemPrompt,
		GatewayURL:       data.GatewayURL,
		GatewayAPIKey:    data.GatewayAPIKey,
		GatewayInstance:  data.GatewayInstance,
		AdminPhone:       data.AdminPhone,
		Active:           data.Active,
		UpdatedAt:        data.UpdatedAt,
	}

	if len(data.OpeningHours) > 0 {
		if err := json.Unmarshal(data.OpeningHours, &settings.OpeningHours); err != nil {
			return nil, errors.Wrap(err, "failed to decode opening hours")
		}
	}

	return settings, nil
}

func fromSettingsDomain(data *entity.Settings) (*model.SettingsModel, error) {
	hours, err := json.Marshal(data.OpeningHours)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode opening hours")
	}

	return &model.SettingsModel{
		ID:               model.SettingsID,
		CompletionAPIKey: data.CompletionAPIKey,
		CompletionModel:  data.CompletionModel,
		SystemPrompt:     data.SystemPrompt,
		GatewayURL:       data.GatewayURL,
		GatewayAPIKey:    data.GatewayAPIKey,
		GatewayInstance:  data.GatewayInstance,
		AdminPhone:       data.AdminPhone,
		Active:           data.Active,
		OpeningHours:     datatypes.JSON(hours),
	}, nil
}
