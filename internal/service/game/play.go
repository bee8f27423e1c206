package game

import (
	"context"
	"errors"
	"log"
	"plinko_backend/internal/model"
	"time"
)

// Событие для всех подписчиков после сыгранного дропа
const gamePlayedEvent = "game_played"

// Play выполняет один платный дроп шарика.
// Последовательность: настройки → лимит дропов → списание →
// розыгрыш → начисление → инкремент счетчика → рассылка
func (s *serv) Play(ctx context.Context, play model.Play) (*model.PlayResult, error) {
	// Валидация идентификатора пользователя
	if play.UID == "" {
		return nil, model.ErrUIDRequired
	}

	// Загружаем настройки (создадутся с дефолтами при первом чтении)
	settings, err := s.settingsServ.Get(ctx)
	if err != nil {
		return nil, err
	}

	// Пользователь должен существовать, кошелек - нет (создается лениво)
	user, err := s.userRepo.GetUserByUID(ctx, play.UID)
	if err != nil {
		return nil, err
	}

	// Сериализуем весь цикл по пользователю: два параллельных дропа
	// не должны вместе пройти проверку лимита или баланса
	unlock := s.locks.lock(play.UID)
	defer unlock()

	// Сбрасываем окно счетчика, если оно истекло
	window := time.Duration(settings.DropResetTimeMs) * time.Millisecond
	s.dropRepo.Refresh(play.UID, time.Now(), window)

	// Проверка лимита строго до любых изменений кошелька
	if s.dropRepo.Count(play.UID) >= settings.BallLimit {
		return nil, model.ErrLimitReached
	}

	// Цена шарика: дефолт при нулевой, клиентская цена не выше максимума
	price := play.BallPrice
	if price == 0 {
		price = s.gameCfg.DefaultBallPrice()
	}
	if price < 0 {
		return nil, model.ErrInvalidPrice
	}
	if price > settings.MaxBallPrice {
		price = settings.MaxBallPrice
	}

	var (
		res      *model.PlayResult
		drop     model.DropOutcome
		winnings float64
	)

	// Списание и начисление коммитятся вместе: половинчатое состояние
	// "списали, но не начислили" невозможно
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Ленивое создание кошелька со стартовым балансом из настроек
		_, err := s.walletRepo.GetByUID(txCtx, play.UID)
		if errors.Is(err, model.ErrWalletNotFound) {
			err = s.walletRepo.Create(txCtx, &model.Wallet{
				UID:     play.UID,
				Email:   user.Email,
				Balance: settings.InitialBalance,
			})
		}
		if err != nil {
			return err
		}

		// Списание ставки до розыгрыша
		if err := s.walletRepo.Debit(txCtx, play.UID, price); err != nil {
			return err
		}

		// КЛЮЧЕВОЙ ВЫЗОВ
		drop = simulateDrop()
		winnings = price * drop.Multiplier

		// Начисление выигрыша (может быть меньше ставки при множителе < 1)
		if err := s.walletRepo.Credit(txCtx, play.UID, winnings); err != nil {
			return err
		}

		// Баланс после начисления - для ответа клиенту
		wallet, err := s.walletRepo.GetByUID(txCtx, play.UID)
		if err != nil {
			return err
		}

		res = &model.PlayResult{
			UID:            play.UID,
			Point:          drop.Points,
			Pattern:        drop.Pattern,
			Multiplier:     drop.Multiplier,
			BallPrice:      price,
			Winnings:       winnings,
			RemainingZixos: wallet.Balance,
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInsufficientFunds) {
			return nil, err
		}
		// Откат после розыгрыша требует сверки: пишем пользователя,
		// цену и результат, чтобы инцидент можно было восстановить
		log.Printf("game: play tx failed: uid=%s price=%.2f bucket=%d winnings=%.2f err=%v",
			play.UID, price, drop.Bucket, winnings, err)
		return nil, err
	}

	// Дроп засчитывается только после успешного коммита:
	// отклоненная игра не тратит слот
	s.dropRepo.Increment(play.UID)
	res.RemainingBalls = settings.BallLimit - s.dropRepo.Count(play.UID)

	// Рассылаем результат всем подписчикам
	s.broadcaster.Emit(gamePlayedEvent, map[string]any{
		"uid":        play.UID,
		"point":      drop.Points,
		"pattern":    drop.Pattern,
		"multiplier": drop.Multiplier,
	})

	return res, nil
}
