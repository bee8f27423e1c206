package settings

import (
	"plinko_backend/internal/config"
	"plinko_backend/internal/repository"
	"plinko_backend/internal/service"
	"sync"
)

type serv struct {
	repo        repository.SettingsRepository
	gameCfg     config.GameConfig
	broadcaster service.EventBroadcaster

	// mtx защищает check-then-write на singleton-строке:
	// создание дефолтов и частичное обновление идут под одним локом
	mtx sync.Mutex
}

// NewSettingsService Создать сервис настроек игры
func NewSettingsService(
	repo repository.SettingsRepository,
	gameCfg config.GameConfig,
	broadcaster service.EventBroadcaster,
) service.SettingsService {
	return &serv{
		repo:        repo,
		gameCfg:     gameCfg,
		broadcaster: broadcaster,
	}
}
