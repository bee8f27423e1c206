package converter

import (
	dto "plinko_backend/internal/api/dto/auth"
	"plinko_backend/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Email:    req.Email,
		Password: req.Password,
	}
}
