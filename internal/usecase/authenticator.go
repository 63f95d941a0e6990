package usecase

import (
	"context"
	"strings"

	"bookstore-api/internal/domain/auth"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/jwt"
	"bookstore-api/internal/usecase/queries"
)

var (
	ErrInvalidHeader   = errs.New("invalid authorization header")
	ErrInvalidToken    = errs.New("invalid or expired token")
	ErrUnknownIdentity = errs.New("user not found or inactive")
)

// Authenticator turns an Authorization header into the live identity behind it.
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (auth.Identity, error)
}

type authenticatorImpl struct {
	jwtService  *jwt.Service
	userQueries queries.UserQueries
}

func NewAuthenticator(jwtService *jwt.Service, userQueries queries.UserQueries) Authenticator {
	return &authenticatorImpl{
		jwtService:  jwtService,
		userQueries: userQueries,
	}
}

func (a *authenticatorImpl) Authenticate(ctx context.Context, header string) (auth.Identity, error) {
	token, err := parseBearer(header)
	if err != nil {
		return auth.Identity{}, err
	}

	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return auth.Identity{}, errs.Mark(err, ErrInvalidToken)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return auth.Identity{}, ErrInvalidToken
	}

	user, err := a.userQueries.GetCurrentUser(ctx, claims.UserID)
	if err != nil {
		if errs.IsAny(err, queries.ErrUserNotFound, queries.ErrUserInactive) {
			return auth.Identity{}, errs.Mark(err, ErrUnknownIdentity)
		}
		return auth.Identity{}, err
	}

	// Staff flag comes from the live record so demotion takes effect before token expiry.
	return auth.Identity{
		UserID:     user.ID,
		Username:   user.Username,
		IsStaff:    user.IsStaff,
		CustomerID: user.CustomerID,
	}, nil
}

// parseBearer accepts exactly "<scheme> <token>" separated by any whitespace, with a case-insensitive bearer scheme.
func parseBearer(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrInvalidHeader
	}
	return parts[1], nil
}
