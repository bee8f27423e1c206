package wallet

import (
	"plinko_backend/internal/repository"
	"plinko_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	userRepo    repository.UserRepository
	walletRepo  repository.WalletRepository
	requestRepo repository.WalletRequestRepository
	txManager   trm.Manager
	broadcaster service.EventBroadcaster
}

// NewWalletService Создать сервис кошельков и заявок на пополнение
func NewWalletService(
	userRepo repository.UserRepository,
	walletRepo repository.WalletRepository,
	requestRepo repository.WalletRequestRepository,
	txManager trm.Manager,
	broadcaster service.EventBroadcaster,
) service.WalletService {
	return &serv{
		userRepo:    userRepo,
		walletRepo:  walletRepo,
		requestRepo: requestRepo,
		txManager:   txManager,
		broadcaster: broadcaster,
	}
}
