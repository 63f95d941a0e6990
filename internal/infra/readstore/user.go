package readstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"
)

type UserReadQueries interface {
	GetAuthIdentity(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAuthIdentityRow, error)
	GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// FindByID resolves the user together with the id of its customer profile, if any.
func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetAuthIdentity(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapPgErr(r.logger, "failed to find user by ID", err)
	}

	view := &queries.AuthorizedUserView{
		ID:       row.ID,
		Username: row.Username,
		IsStaff:  row.IsStaff,
		IsActive: row.IsActive,
	}
	if row.CustomerID.Valid {
		customerID := uuid.UUID(row.CustomerID.Bytes)
		view.CustomerID = &customerID
	}
	return view, nil
}

func (r *UserReadStore) FindCredentialsByUsername(ctx context.Context, username string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapPgErr(r.logger, "failed to find user by username", err)
	}

	view := &queries.AuthorizedUserView{
		ID:       row.ID,
		Username: row.Username,
		IsStaff:  row.IsStaff,
		IsActive: row.IsActive,
	}
	return view, row.PasswordHash, nil
}
