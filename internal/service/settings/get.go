package settings

import (
	"context"
	"errors"
	"plinko_backend/internal/model"
)

// Get возвращает настройки игры, создавая singleton-строку
// с дефолтами из конфигурации при первом обращении
func (s *serv) Get(ctx context.Context) (*model.GameSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, model.ErrSettingsNotFound) {
		return nil, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	// Перечитываем под локом: дефолты мог создать параллельный запрос
	settings, err = s.repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, model.ErrSettingsNotFound) {
		return nil, err
	}

	defaults := s.defaultSettings("system")
	if err := s.repo.Create(ctx, defaults); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx)
}

func (s *serv) defaultSettings(editor string) *model.GameSettings {
	def := s.gameCfg.DefaultSettings()

	return &model.GameSettings{
		BallLimit:        def.BallLimit,
		InitialBalance:   def.InitialBalance,
		MaxBallPrice:     def.MaxBallPrice,
		DropResetTimeMs:  def.DropResetTimeMs,
		TotalCycleTimeMs: def.TotalCycleTimeMs,
		LastSignedInBy:   editor,
	}
}
