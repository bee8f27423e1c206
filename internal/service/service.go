package service

import (
	"context"
	"plinko_backend/internal/model"
)

type GameService interface {
	Play(ctx context.Context, play model.Play) (*model.PlayResult, error)
	DemoPlay(ctx context.Context, play model.DemoPlay) (*model.DemoPlayResult, error)
	RemainingBalls(userID string, socketID string) int
}

type SettingsService interface {
	Get(ctx context.Context) (*model.GameSettings, error)
	Update(ctx context.Context, update model.SettingsUpdate) (*model.GameSettings, error)
}

type WalletService interface {
	UserWallet(ctx context.Context, uid string) (*model.User, *model.Wallet, error)
	SubmitRequest(ctx context.Context, uid string, amount float64) (*model.WalletRequest, error)
	ListRequests(ctx context.Context) ([]model.WalletRequest, error)
	Approve(ctx context.Context, id string, adminEmail string) (newBalance float64, err error)
	Reject(ctx context.Context, id string, adminEmail string) error
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login string, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

// EventBroadcaster - рассылка игровых событий подключенным клиентам.
// Emit шлет всем, EmitTo - конкретному соединению. Доставка best-effort
type EventBroadcaster interface {
	Emit(event string, payload any)
	EmitTo(socketID string, event string, payload any) error
}
