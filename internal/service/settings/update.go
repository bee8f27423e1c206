package settings

import (
	"context"
	"errors"
	"plinko_backend/internal/model"
)

// Событие для подписчиков после изменения настроек
const settingsUpdatedEvent = "settings_updated"

// Update применяет частичное обновление настроек: трогаются только
// переданные поля. Редактор (lastSignedInBy) обязателен
func (s *serv) Update(ctx context.Context, update model.SettingsUpdate) (*model.GameSettings, error) {
	if update.LastSignedInBy == "" {
		return nil, model.ErrEditorRequired
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	settings, err := s.repo.Get(ctx)
	if errors.Is(err, model.ErrSettingsNotFound) {
		// Первая запись: стартуем с дефолтов и накладываем обновление
		settings = s.defaultSettings(update.LastSignedInBy)
		if err := s.repo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if update.BallLimit != nil {
		settings.BallLimit = *update.BallLimit
	}
	if update.InitialBalance != nil {
		settings.InitialBalance = *update.InitialBalance
	}
	if update.MaxBallPrice != nil {
		settings.MaxBallPrice = *update.MaxBallPrice
	}
	if update.DropResetTimeMs != nil {
		settings.DropResetTimeMs = *update.DropResetTimeMs
	}
	if update.TotalCycleTimeMs != nil {
		settings.TotalCycleTimeMs = *update.TotalCycleTimeMs
	}
	settings.LastSignedInBy = update.LastSignedInBy

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, err
	}

	// Подписчики обновляют настройки локально
	s.broadcaster.Emit(settingsUpdatedEvent, map[string]any{
		"ballLimit":      settings.BallLimit,
		"initialBalance": settings.InitialBalance,
		"maxBallPrice":   settings.MaxBallPrice,
		"dropResetTime":  settings.DropResetTimeMs,
		"totalCycleTime": settings.TotalCycleTimeMs,
		"lastSignedInBy": settings.LastSignedInBy,
	})

	return settings, nil
}
