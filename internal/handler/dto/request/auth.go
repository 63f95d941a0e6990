package request

import (
	"bookstore-api/internal/domain/auth"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Username, r.Password)
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}
