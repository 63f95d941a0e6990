//go:build unit

package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/repository"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
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

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// =============================================================================
// Create Book Tests
// =============================================================================

func TestBookRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: book created",
			setupMock: func(m *repositorymock.MockBookWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().CreateBook(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookParams) (uuid.UUID, error) {
						assert.Equal(t, "Dune", arg.Title)
						assert.Equal(t, int32(5), arg.Quantity)
						assert.False(t, arg.ImageUrl.Valid)
						return arg.ID, nil
					})
			},
		},
		{
			name: "error: database error",
			setupMock: func(m *repositorymock.MockBookWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().CreateBook(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: check constraint",
			setupMock: func(m *repositorymock.MockBookWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().CreateBook(ctx, tx, gomock.Any()).Return(uuid.Nil, &pgconn.PgError{Code: "23514"})
			},
			expectedError: true,
			expectKind:    infra.KindCheckViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookRepository(mockQueries, discardLogger)

			b, err := builder.NewBookBuilder().BuildDomain()
			require.NoError(t, err)
			tc.setupMock(mockQueries, mockDB)

			id, actualError := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, b.ID(), id)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestBookRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success: row is reconstructed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookWriteQueries(ctrl)
		repo := repository.NewBookRepository(mockQueries, discardLogger)

		mockQueries.EXPECT().GetBookForUpdate(ctx, gomock.Any(), bookID).Return(sqlc.GetBookForUpdateRow{
			ID:         bookID,
			Title:      "Dune",
			Author:     "Frank Herbert",
			Genre:      "Science Fiction",
			Quantity:   3,
			Popularity: 42,
			ImageUrl:   pgtype.Text{String: "https://img.example.com/dune.jpg", Valid: true},
			CreatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
			UpdatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
		}, nil)

		b, err := repo.FindForUpdate(ctx, &mockDBTX{}, bookID)
		require.NoError(t, err)
		assert.Equal(t, bookID, b.ID())
		assert.Equal(t, int32(3), b.Quantity())
		assert.Equal(t, int32(42), b.Popularity())
		require.NotNil(t, b.ImageURL())
		assert.Equal(t, "https://img.example.com/dune.jpg", *b.ImageURL())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookWriteQueries(ctrl)
		repo := repository.NewBookRepository(mockQueries, discardLogger)

		mockQueries.EXPECT().GetBookForUpdate(ctx, gomock.Any(), bookID).Return(sqlc.GetBookForUpdateRow{}, pgx.ErrNoRows)

		b, err := repo.FindForUpdate(ctx, &mockDBTX{}, bookID)
		assert.Nil(t, b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// ApplyStockDelta / Update / Delete Tests
// =============================================================================

func TestBookRepository_ApplyStockDelta(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	testCases := []struct {
		name       string
		returnQty  int32
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: committed quantity returned", returnQty: 3},
		{name: "error: negative stock rejected by check", returnErr: &pgconn.PgError{Code: "23514", ConstraintName: "books_quantity_non_negative"}, expectKind: infra.KindCheckViolated},
		{name: "error: row missing", returnErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookWriteQueries(ctrl)
			repo := repository.NewBookRepository(mockQueries, discardLogger)

			mockQueries.EXPECT().
				AdjustBookQuantity(ctx, gomock.Any(), sqlc.AdjustBookQuantityParams{Delta: -2, ID: bookID}).
				Return(tc.returnQty, tc.returnErr)

			qty, err := repo.ApplyStockDelta(ctx, &mockDBTX{}, bookID, -2)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.returnQty, qty)
		})
	}
}

func TestBookRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update of missing row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookWriteQueries(ctrl)
		repo := repository.NewBookRepository(mockQueries, discardLogger)
		b, _ := builder.NewBookBuilder().BuildDomain()

		mockQueries.EXPECT().UpdateBook(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repo.Update(ctx, &mockDBTX{}, b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("delete blocked by foreign key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookWriteQueries(ctrl)
		repo := repository.NewBookRepository(mockQueries, discardLogger)
		id := uuid.New()

		mockQueries.EXPECT().DeleteBook(ctx, gomock.Any(), id).Return(int64(0), &pgconn.PgError{Code: "23503"})

		err := repo.Delete(ctx, &mockDBTX{}, id)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookWriteQueries(ctrl)
		repo := repository.NewBookRepository(mockQueries, discardLogger)
		id := uuid.New()

		mockQueries.EXPECT().DeleteBook(ctx, gomock.Any(), id).Return(int64(1), nil)

		assert.NoError(t, repo.Delete(ctx, &mockDBTX{}, id))
	})
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
