//go:build unit

package bootstrap

import (
	"testing"

	"bookstore-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService(t *testing.T) {
	tests := []struct {
		name    string
		access  string
		refresh string
		wantErr string
	}{
		{name: "defaults", access: "15m", refresh: "24h"},
		{name: "unparsable access", access: "soon", refresh: "24h", wantErr: "JWT_ACCESS_TOKEN_DURATION"},
		{name: "negative refresh", access: "15m", refresh: "-1h", wantErr: "JWT_REFRESH_TOKEN_DURATION"},
		{name: "refresh not longer than access", access: "1h", refresh: "1h", wantErr: "must exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			cfg.JWT.AccessTokenDuration = tt.access
			cfg.JWT.RefreshTokenDuration = tt.refresh

			svc, err := NewJWTService(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}
