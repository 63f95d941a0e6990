//go:build unit || e2e

package builder

import (
	reqdto "bookstore-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "reader",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		User: reqdto.SignupUserRequest{
			Username:  a.Username,
			Password:  a.Password,
			FirstName: "Ada",
			LastName:  "Reader",
			Email:     "reader@example.com",
		},
	}
}
