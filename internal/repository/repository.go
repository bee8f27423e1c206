package repository

import (
	"context"
	"plinko_backend/internal/model"
	"time"
)

type WalletRepository interface {
	GetByUID(ctx context.Context, uid string) (*model.Wallet, error)
	Create(ctx context.Context, wallet *model.Wallet) error

	// Debit атомарно проверяет balance >= amount и списывает.
	// Возвращает model.ErrInsufficientFunds без изменения баланса, если средств не хватает
	Debit(ctx context.Context, uid string, amount float64) error
	Credit(ctx context.Context, uid string, amount float64) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*model.GameSettings, error)
	Create(ctx context.Context, settings *model.GameSettings) error
	Update(ctx context.Context, settings *model.GameSettings) error
}

type WalletRequestRepository interface {
	Create(ctx context.Context, request *model.WalletRequest) error
	List(ctx context.Context) ([]model.WalletRequest, error)
	GetByID(ctx context.Context, id string) (*model.WalletRequest, error)
	UpdateStatus(ctx context.Context, id string, status string, signedBy string) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByUID(ctx context.Context, uid string) (*model.User, error)
}

// DropSessionRepository - process-local счетчик дропов на пользователя.
// Окно сбрасывается по времени; состояние не переживает рестарт процесса
type DropSessionRepository interface {
	Refresh(uid string, now time.Time, window time.Duration)
	Count(uid string) int
	Increment(uid string)
}

// DemoSessionRepository - счетчик дропов демо-режима.
// Дополнительно привязан к socket id: новая вкладка обнуляет счетчик
type DemoSessionRepository interface {
	Touch(uid string, socketID string, now time.Time)
	Count(uid string) int
	Increment(uid string)
	ClearSocket(socketID string)
}
