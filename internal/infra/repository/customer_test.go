//go:build unit

package repository_test

import (
	"context"
	"testing"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/repository"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/usecase/shared"
	"bookstore-api/tests/common/builder"
	repositorymock "bookstore-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCustomerRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: quota fields are persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
		repo := repository.NewCustomerRepository(mockQueries, discardLogger)
		c := builder.NewCustomerBuilder().WithQuota(30, 0).BuildDomain()

		mockQueries.EXPECT().CreateCustomer(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateCustomerParams) (uuid.UUID, error) {
				assert.Equal(t, c.UserID(), arg.UserID)
				assert.Equal(t, int32(30), arg.MaxReservations)
				assert.Equal(t, int32(0), arg.CurrentReservations)
				return arg.ID, nil
			})

		id, err := repo.Create(ctx, &mockDBTX{}, c)
		require.NoError(t, err)
		assert.Equal(t, c.ID(), id)
	})

	t.Run("error: duplicate user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
		repo := repository.NewCustomerRepository(mockQueries, discardLogger)

		mockQueries.EXPECT().CreateCustomer(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, &pgconn.PgError{Code: "23505"})

		_, err := repo.Create(ctx, &mockDBTX{}, builder.NewCustomerBuilder().BuildDomain())
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestCustomerRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
		repo := repository.NewCustomerRepository(mockQueries, discardLogger)

		mockQueries.EXPECT().GetCustomerForUpdate(ctx, gomock.Any(), id).Return(sqlc.Customers{
			ID:                  id,
			UserID:              uuid.New(),
			MailingAddress:      pgtype.Text{String: "1 Main St", Valid: true},
			MaxReservations:     30,
			CurrentReservations: 4,
		}, nil)

		c, err := repo.FindForUpdate(ctx, &mockDBTX{}, id)
		require.NoError(t, err)
		assert.Equal(t, int32(4), c.CurrentReservations())
		assert.Equal(t, int32(26), c.RemainingReservations())
		assert.Equal(t, "1 Main St", *c.MailingAddress())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
		repo := repository.NewCustomerRepository(mockQueries, discardLogger)

		mockQueries.EXPECT().GetCustomerForUpdate(ctx, gomock.Any(), id).Return(sqlc.Customers{}, pgx.ErrNoRows)

		c, err := repo.FindForUpdate(ctx, &mockDBTX{}, id)
		assert.Nil(t, c)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCustomerRepository_ApplyReservationDelta(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.AdjustCustomerReservationsRow
		err        error
		want       shared.QuotaCounters
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", row: sqlc.AdjustCustomerReservationsRow{CurrentReservations: 3, MaxReservations: 30}, want: shared.QuotaCounters{Current: 3, Max: 30}},
		{name: "quota check violated", err: &pgconn.PgError{Code: "23514", ConstraintName: "customers_current_within_quota"}, expectKind: infra.KindCheckViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
			repo := repository.NewCustomerRepository(mockQueries, discardLogger)

			mockQueries.EXPECT().
				AdjustCustomerReservations(ctx, gomock.Any(), sqlc.AdjustCustomerReservationsParams{Delta: 3, ID: id}).
				Return(tc.row, tc.err)

			got, err := repo.ApplyReservationDelta(ctx, &mockDBTX{}, id, 3)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCustomerRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
	repo := repository.NewCustomerRepository(mockQueries, discardLogger)

	mockQueries.EXPECT().DeleteCustomer(ctx, gomock.Any(), id).Return(int64(0), nil)

	err := repo.Delete(ctx, &mockDBTX{}, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
