package auth

import (
	"context"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Удаление сессии закрывает и refresh токен
	return s.authRepo.DeleteSession(ctx, sessionID)
}
