package bootstrap

import (
	"time"

	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTTL, err := parsePositiveDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_ACCESS_TOKEN_DURATION")
	}
	refreshTTL, err := parsePositiveDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_REFRESH_TOKEN_DURATION")
	}
	// a refresh token that dies first would make rotation useless
	if refreshTTL <= accessTTL {
		return nil, errs.Newf("JWT_REFRESH_TOKEN_DURATION (%s) must exceed JWT_ACCESS_TOKEN_DURATION (%s)", refreshTTL, accessTTL)
	}

	return jwt.NewService(cfg.JWT.Secret, accessTTL, refreshTTL), nil
}

func parsePositiveDuration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, errs.Newf("duration must be positive, got %s", raw)
	}
	return d, nil
}
