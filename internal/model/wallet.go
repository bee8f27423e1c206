package model

import "time"

type Wallet struct {
	UID     string
	Email   string
	Balance float64
}

// Статусы заявок на пополнение кошелька
const (
	WalletRequestPending  = "pending"
	WalletRequestApproved = "approved"
	WalletRequestRejected = "rejected"
)

type WalletRequest struct {
	ID              string
	UID             string
	Email           string
	RequestedAmount float64
	Status          string
	SignedBy        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
