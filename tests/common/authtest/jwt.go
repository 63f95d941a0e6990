//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, access time.Duration) *jwt.Service {
	t.Helper()
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, refreshDuration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, isStaff bool) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	token, err := h.service(t, duration).GenerateAccessToken(userID, isStaff)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, isStaff bool) string {
	t.Helper()
	token, err := h.service(t, time.Minute).GenerateRefreshToken(userID, isStaff)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, isStaff bool) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAccessToken(userID, isStaff)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
