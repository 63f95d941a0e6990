package commands

import (
	"context"
	"log/slog"
	"time"

	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/jwt"
	"bookstore-api/internal/pkg/password"
	"bookstore-api/internal/usecase/queries"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenDenylist records refresh token ids that were already exchanged.
type TokenDenylist interface {
	// Consume returns false when jti was seen before.
	Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error)
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	denylist   TokenDenylist
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	denylist TokenDenylist,
	clock clock.Clock,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		denylist:   denylist,
		clock:      clock,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*TokenPair, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	// Unknown user, inactive user and wrong password share one error to prevent enumeration.
	view, hashedPassword, err := a.readStore.FindCredentialsByUsername(ctx, credentials.Username())
	if err != nil || view == nil || !view.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(hashedPassword, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := a.issue(view.ID, view.IsStaff)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID, a.clock.Now())
	})
	if err != nil {
		// Login already succeeded; only last_login is stale
		a.logger.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return pair, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, ErrTokenValidation
	}

	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil || !view.IsActive {
		return nil, ErrTokenValidation
	}

	fresh, err := a.denylist.Consume(ctx, claims.ID, claims.ExpiresAt.Sub(a.clock.Now()))
	if err != nil {
		a.logger.Error("refresh token denylist unavailable", "user_id", view.ID, "error", err.Error())
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if !fresh {
		a.logger.Warn("refresh token reused", "user_id", view.ID, "jti", claims.ID)
		return nil, ErrTokenValidation
	}

	return a.issue(view.ID, view.IsStaff)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, isStaff bool) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, isStaff)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, isStaff)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
