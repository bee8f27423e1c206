package wallet

import (
	"context"
	"errors"
	"log"
	"plinko_backend/internal/model"

	"github.com/google/uuid"
)

// Событие для подписчиков после одобрения заявки
const requestApprovedEvent = "wallet_request_approved"

// SubmitRequest создает заявку на пополнение кошелька
func (s *serv) SubmitRequest(ctx context.Context, uid string, amount float64) (*model.WalletRequest, error) {
	if uid == "" {
		return nil, model.ErrUIDRequired
	}
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}

	user, err := s.userRepo.GetUserByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	request := &model.WalletRequest{
		ID:              uuid.NewString(),
		UID:             uid,
		Email:           user.Email,
		RequestedAmount: amount,
		Status:          model.WalletRequestPending,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// ListRequests возвращает все заявки на пополнение
func (s *serv) ListRequests(ctx context.Context) ([]model.WalletRequest, error) {
	return s.requestRepo.List(ctx)
}

// Approve одобряет pending-заявку и начисляет запрошенную сумму.
// Смена статуса и начисление коммитятся одной транзакцией
func (s *serv) Approve(ctx context.Context, id string, adminEmail string) (float64, error) {
	var (
		request    *model.WalletRequest
		newBalance float64
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		request, err = s.requestRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if request.Status != model.WalletRequestPending {
			return model.ErrRequestProcessed
		}

		if err := s.requestRepo.UpdateStatus(txCtx, id, model.WalletRequestApproved, adminEmail); err != nil {
			return err
		}

		if err := s.walletRepo.Credit(txCtx, request.UID, request.RequestedAmount); err != nil {
			return err
		}

		wallet, err := s.walletRepo.GetByUID(txCtx, request.UID)
		if err != nil {
			return err
		}
		newBalance = wallet.Balance

		return nil
	})
	if err != nil {
		if !errors.Is(err, model.ErrRequestNotFound) &&
			!errors.Is(err, model.ErrRequestProcessed) &&
			!errors.Is(err, model.ErrWalletNotFound) {
			log.Printf("wallet: approve tx failed: request=%s admin=%s err=%v", id, adminEmail, err)
		}
		return 0, err
	}

	// Фронтенд обновляет баланс по событию
	s.broadcaster.Emit(requestApprovedEvent, map[string]any{
		"uid":        request.UID,
		"newBalance": newBalance,
		"signedBy":   adminEmail,
	})

	return newBalance, nil
}

// Reject отклоняет pending-заявку без изменения кошелька
func (s *serv) Reject(ctx context.Context, id string, adminEmail string) error {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != model.WalletRequestPending {
		return model.ErrRequestProcessed
	}

	return s.requestRepo.UpdateStatus(ctx, id, model.WalletRequestRejected, adminEmail)
}
