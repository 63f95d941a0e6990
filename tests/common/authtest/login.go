//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/handler/dto/response"
	"bookstore-api/tests/common/dbtest"
	"bookstore-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const TokenURL = "/api/token"

func LoginUser(t *testing.T, router *gin.Engine, username, password string) response.TokenResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, TokenURL,
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tokens response.TokenResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &tokens)
	require.NotEmpty(t, tokens.Access, "Access token is empty")
	require.NotEmpty(t, tokens.Refresh, "Refresh token is empty")

	return tokens
}

// LoginAdmin logs in as the seeded staff user.
func LoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return LoginUser(t, router, dbtest.AdminUsername, dbtest.DefaultPassword).Access
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string, isStaff bool) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, username, isStaff)
	return LoginUser(t, router, username, dbtest.DefaultPassword).Access
}
