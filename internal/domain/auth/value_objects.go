package auth

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
)

type Credentials struct {
	username string
	password string
}

// NewCredentials only checks presence; lookup and hash comparison decide validity.
func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() string {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}
