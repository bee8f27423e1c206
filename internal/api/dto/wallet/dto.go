package wallet

import "time"

type UserWalletResponse struct {
	UID     string  `json:"uid"`
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

type SubmitRequestRequest struct {
	UID             string  `json:"uid"`             // UID пользователя
	RequestedAmount float64 `json:"requestedAmount"` // Запрошенная сумма (>0)
}

type RequestActionRequest struct {
	AdminEmail string `json:"adminEmail"` // Email администратора, подписавшего решение
}

type WalletRequestResponse struct {
	ID              string    `json:"id"`
	UID             string    `json:"uid"`
	Email           string    `json:"email"`
	RequestedAmount float64   `json:"requestedAmount"`
	Status          string    `json:"status"` // pending | approved | rejected
	SignedBy        string    `json:"signedBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ApproveResponse struct {
	Message    string  `json:"message"`
	NewBalance float64 `json:"newBalance"`
	SignedBy   string  `json:"signedBy"`
}
