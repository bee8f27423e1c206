package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	UID      string
	Name     string
	Login    string
	Email    string
	Password string
	Role     string
}

type UserClaims struct {
	jwt.RegisteredClaims
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
