//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/repository"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/tests/common/builder"
	repositorymock "bookstore-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: profile and flags are persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		repo := repository.NewUserRepository(mockQueries, discardLogger)
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error) {
				assert.Equal(t, "reader", arg.Username)
				assert.Equal(t, "hashed_password", arg.PasswordHash)
				assert.Equal(t, "reader@example.com", arg.Email)
				assert.False(t, arg.IsStaff)
				assert.True(t, arg.IsActive)
				assert.True(t, arg.DateJoined.Valid)
				return arg.ID, nil
			})

		id, err := repo.Create(ctx, &mockDBTX{}, u)
		require.NoError(t, err)
		assert.Equal(t, u.ID(), id)
	})

	t.Run("error: username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		repo := repository.NewUserRepository(mockQueries, discardLogger)
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, &pgconn.PgError{Code: "23505"})

		_, err = repo.Create(ctx, &mockDBTX{}, u)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		repo := repository.NewUserRepository(mockQueries, discardLogger)
		row := builder.NewUserBuilder().AsStaff().BuildInfra()

		mockQueries.EXPECT().GetUserByID(ctx, gomock.Any(), row.ID).Return(row, nil)

		u, err := repo.FindByID(ctx, &mockDBTX{}, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, u.ID())
		assert.Equal(t, "reader", u.Username().String())
		assert.True(t, u.IsStaff())
		assert.Nil(t, u.LastLogin())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		repo := repository.NewUserRepository(mockQueries, discardLogger)
		id := uuid.New()

		mockQueries.EXPECT().GetUserByID(ctx, gomock.Any(), id).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, &mockDBTX{}, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		affected int64
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "error: row vanished", affected: 0, wantKind: infra.KindNotFound},
		{name: "error: db failure", dbErr: errors.New("connection reset"), wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			repo := repository.NewUserRepository(mockQueries, discardLogger)
			u := builder.NewUserBuilder().BuildReconstructed(uuid.New())

			mockQueries.EXPECT().UpdateUserProfile(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (int64, error) {
					assert.Equal(t, u.ID(), arg.ID)
					assert.Equal(t, "Ada", arg.FirstName)
					return tt.affected, tt.dbErr
				})

			err := repo.UpdateProfile(ctx, &mockDBTX{}, u)
			if tt.wantKind == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
	repo := repository.NewUserRepository(mockQueries, discardLogger)
	id := uuid.New()

	mockQueries.EXPECT().UpdateUserLastLogin(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error {
			assert.Equal(t, id, arg.ID)
			assert.True(t, arg.LastLogin.Time.Equal(builder.FixedTime))
			return nil
		})

	require.NoError(t, repo.UpdateLastLogin(ctx, &mockDBTX{}, id, builder.FixedTime))
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
	repo := repository.NewUserRepository(mockQueries, discardLogger)
	id := uuid.New()

	mockQueries.EXPECT().DeleteUser(ctx, gomock.Any(), id).Return(int64(0), nil)

	err := repo.Delete(ctx, &mockDBTX{}, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
