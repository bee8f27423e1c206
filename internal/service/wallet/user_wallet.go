package wallet

import (
	"context"
	"plinko_backend/internal/model"
)

// UserWallet возвращает пользователя и его кошелек.
// Кошелек здесь не создается лениво: если дропов еще не было - 404
func (s *serv) UserWallet(ctx context.Context, uid string) (*model.User, *model.Wallet, error) {
	if uid == "" {
		return nil, nil, model.ErrUIDRequired
	}

	user, err := s.userRepo.GetUserByUID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}

	wallet, err := s.walletRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}

	return user, wallet, nil
}
