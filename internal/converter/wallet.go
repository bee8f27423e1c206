package converter

import (
	dto "plinko_backend/internal/api/dto/wallet"
	"plinko_backend/internal/model"
)

func ToUserWalletResponse(user model.User, wallet model.Wallet) dto.UserWalletResponse {
	return dto.UserWalletResponse{
		UID:     user.UID,
		Email:   user.Email,
		Balance: wallet.Balance,
	}
}

func ToWalletRequestResponse(request model.WalletRequest) dto.WalletRequestResponse {
	return dto.WalletRequestResponse{
		ID:              request.ID,
		UID:             request.UID,
		Email:           request.Email,
		RequestedAmount: request.RequestedAmount,
		Status:          request.Status,
		SignedBy:        request.SignedBy,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}
}

func ToWalletRequestResponses(requests []model.WalletRequest) []dto.WalletRequestResponse {
	responses := make([]dto.WalletRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, ToWalletRequestResponse(request))
	}

	return responses
}
