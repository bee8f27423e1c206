package game

import (
	"context"
	"log"
	"plinko_backend/internal/model"
	"time"
)

// Событие демо-результата, адресуется конкретному соединению
const demoGameResultEvent = "demo_game_result"

// DemoPlay выполняет дроп в демо-режиме: без кошелька, с собственным
// лимитом и сессией, привязанной к socket id. Смена socket id
// (новая вкладка) обнуляет счетчик независимо от временного окна
func (s *serv) DemoPlay(ctx context.Context, play model.DemoPlay) (*model.DemoPlayResult, error) {
	// Валидация входных данных
	if play.UserID == "" {
		return nil, model.ErrUIDRequired
	}
	if play.BallPrice <= 0 {
		return nil, model.ErrInvalidPrice
	}

	limit := s.gameCfg.DemoBallLimit()

	// Демо-цикл сериализуется отдельно от платного
	unlock := s.locks.lock("demo:" + play.UserID)
	defer unlock()

	// Привязываем сессию к socket id, при смене - сброс счетчика
	s.demoRepo.Touch(play.UserID, play.SocketID, time.Now())

	if s.demoRepo.Count(play.UserID) >= limit {
		return nil, model.ErrLimitReached
	}

	// КЛЮЧЕВОЙ ВЫЗОВ
	drop := simulateDrop()

	s.demoRepo.Increment(play.UserID)

	res := &model.DemoPlayResult{
		Point:          drop.Points,
		Pattern:        drop.Pattern,
		Multiplier:     drop.Multiplier,
		RemainingBalls: limit - s.demoRepo.Count(play.UserID),
	}

	// Результат адресуется только соединению игрока
	if play.SocketID != "" {
		err := s.broadcaster.EmitTo(play.SocketID, demoGameResultEvent, map[string]any{
			"point":          drop.Points,
			"pattern":        drop.Pattern,
			"multiplier":     drop.Multiplier,
			"remainingBalls": res.RemainingBalls,
		})
		if err != nil {
			log.Printf("game: demo emit failed: socket=%s err=%v", play.SocketID, err)
		}
	}

	return res, nil
}

// RemainingBalls возвращает остаток демо-дропов для опроса клиентом.
// Непустой socket id обновляет привязку сессии (и может сбросить счетчик)
func (s *serv) RemainingBalls(userID string, socketID string) int {
	limit := s.gameCfg.DemoBallLimit()

	if socketID != "" {
		s.demoRepo.Touch(userID, socketID, time.Now())
	}

	remaining := limit - s.demoRepo.Count(userID)
	if remaining < 0 {
		remaining = 0
	}

	return remaining
}
