package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pedido/internal/delivery/context"
	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	Logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		logger:       params.Logger,
	}
}

func (srv *settingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := srv.settingsRepo.GetSettings(ctx)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return &entity.Settings{}, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load settings")
	}

	return settings, nil
}

func (srv *settingsService) UpdateSettings(ctx context.Context, input *usecase.UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := srv.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	assign(&settings.CompletionAPIKey, input.CompletionAPIKey)
	assign(&settings.CompletionModel, input.CompletionModel)
	assign(&settings.SystemPrompt, input.SystemPrompt)
	assign(&settings.GatewayURL, input.GatewayURL)
	assign(&settings.GatewayAPIKey, input.GatewayAPIKey)
	assign(&settings.GatewayInstance, input.GatewayInstance)
	assign(&settings.AdminPhone, input.AdminPhone)
	assign(&settings.Active, input.Active)
	if input.OpeningHours != nil {
		if input.OpeningHours.Timezone != "" {
			if _, err := time.LoadLocation(input.OpeningHours.Timezone); err != nil {
				return nil, domainerrors.ErrValidationFailed.WithDetails("unknown timezone " + input.OpeningHours.Timezone)
			}
		}
		for weekday, day := range input.OpeningHours.Days {
			if day.Closed {
				continue
			}
			if _, ok := parseClock(day.Open); !ok {
				return nil, domainerrors.ErrValidationFailed.WithDetails(weekday + ": invalid open time")
			}
			if _, ok := parseClock(day.Close); !ok {
				return nil, domainerrors.ErrValidationFailed.WithDetails(weekday + ": invalid close time")
			}
		}
		settings.OpeningHours = *input.OpeningHours
	}
	settings.UpdatedAt = time.Now()

	if err := srv.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save settings")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Settings updated", slog.Bool("active", settings.Active))

	return settings, nil
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
