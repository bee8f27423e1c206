package model

import "errors"

// Ошибки игрового цикла. API-слой отображает их в HTTP-статусы
var (
	ErrUIDRequired       = errors.New("user id is required")
	ErrInvalidPrice      = errors.New("ball price must be positive")
	ErrUserNotFound      = errors.New("user not found")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("not enough zixos to drop a ball")
	ErrLimitReached      = errors.New("ball drop limit reached")

	ErrSettingsNotFound = errors.New("game settings not found")
	ErrEditorRequired   = errors.New("lastSignedInBy is required")

	ErrInvalidAmount = errors.New("requested amount must be positive")

	ErrRequestNotFound  = errors.New("wallet request not found")
	ErrRequestProcessed = errors.New("wallet request has already been processed")
)
