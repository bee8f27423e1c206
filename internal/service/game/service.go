package game

import (
	"plinko_backend/internal/config"
	"plinko_backend/internal/repository"
	"plinko_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	gameCfg      config.GameConfig
	userRepo     repository.UserRepository
	walletRepo   repository.WalletRepository
	dropRepo     repository.DropSessionRepository
	demoRepo     repository.DemoSessionRepository
	settingsServ service.SettingsService
	txManager    trm.Manager
	broadcaster  service.EventBroadcaster
	locks        *uidLocks
}

// NewGameService Создать игровой сервис ball drop
func NewGameService(
	gameCfg config.GameConfig,
	userRepo repository.UserRepository,
	walletRepo repository.WalletRepository,
	dropRepo repository.DropSessionRepository,
	demoRepo repository.DemoSessionRepository,
	settingsServ service.SettingsService,
	txManager trm.Manager,
	broadcaster service.EventBroadcaster,
) service.GameService {
	return &serv{
		gameCfg:      gameCfg,
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		dropRepo:     dropRepo,
		demoRepo:     demoRepo,
		settingsServ: settingsServ,
		txManager:    txManager,
		broadcaster:  broadcaster,
		locks:        newUIDLocks(),
	}
}
