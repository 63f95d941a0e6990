//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/jwt"
	"bookstore-api/internal/usecase"
	"bookstore-api/internal/usecase/queries"
	"bookstore-api/tests/common/builder"
	queriesmock "bookstore-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthenticator_Authenticate(t *testing.T) {
	ctx := context.Background()
	service := jwt.NewService("test-secret-key-for-unit-tests", 5*time.Minute, time.Hour)

	customerID := uuid.New()
	view := builder.NewUserBuilder().WithCustomerID(&customerID).BuildReadModel()
	access, err := service.GenerateAccessToken(view.ID, false)
	require.NoError(t, err)
	refresh, err := service.GenerateRefreshToken(view.ID, false)
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		setupMock func(m *queriesmock.MockUserQueries)
		wantErr   error
	}{
		{
			name:   "success",
			header: "Bearer " + access,
			setupMock: func(m *queriesmock.MockUserQueries) {
				m.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)
			},
		},
		{
			name:   "success: scheme is case-insensitive",
			header: "bearer " + access,
			setupMock: func(m *queriesmock.MockUserQueries) {
				m.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)
			},
		},
		{name: "empty header", header: "", wantErr: usecase.ErrInvalidHeader},
		{name: "missing token", header: "Bearer", wantErr: usecase.ErrInvalidHeader},
		{name: "wrong scheme", header: "Basic " + access, wantErr: usecase.ErrInvalidHeader},
		{name: "extra parts", header: "Bearer " + access + " extra", wantErr: usecase.ErrInvalidHeader},
		{
			name:   "success: repeated whitespace between scheme and token",
			header: "Bearer  " + access,
			setupMock: func(m *queriesmock.MockUserQueries) {
				m.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)
			},
		},
		{
			name:   "success: tab separator",
			header: "Bearer\t" + access,
			setupMock: func(m *queriesmock.MockUserQueries) {
				m.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)
			},
		},
		{name: "whitespace only", header: "   ", wantErr: usecase.ErrInvalidHeader},
		{name: "garbage token", header: "Bearer not-a-jwt", wantErr: usecase.ErrInvalidToken},
		{name: "refresh token", header: "Bearer " + refresh, wantErr: usecase.ErrInvalidToken},
		{
			name:   "user deleted",
			header: "Bearer " + access,
			setupMock: func(m *queriesmock.MockUserQueries) {
				m.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(nil, queries.ErrUserNotFound)
			},
			wantErr: usecase.ErrUnknownIdentity,
		},
		{
			name:   "user deactivated",
			header: "Bearer " + access,
			setupMock: func(m *queriesmock.MockUserQueries) {
				m.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(nil, queries.ErrUserInactive)
			},
			wantErr: usecase.ErrUnknownIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := queriesmock.NewMockUserQueries(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			identity, err := usecase.NewAuthenticator(service, m).Authenticate(ctx, tt.header)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view.ID, identity.UserID)
			assert.Equal(t, "reader", identity.Username)
			require.NotNil(t, identity.CustomerID)
			assert.Equal(t, customerID, *identity.CustomerID)
		})
	}

	t.Run("staff flag comes from the live record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := queriesmock.NewMockUserQueries(ctrl)
		demoted := builder.NewUserBuilder().BuildReadModel()
		token, err := service.GenerateAccessToken(demoted.ID, true)
		require.NoError(t, err)
		m.EXPECT().GetCurrentUser(gomock.Any(), demoted.ID).Return(demoted, nil)

		identity, err := usecase.NewAuthenticator(service, m).Authenticate(ctx, "Bearer "+token)
		require.NoError(t, err)
		assert.False(t, identity.IsStaff)
	})
}
