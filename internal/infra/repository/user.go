package repository

import (
	"context"
	"log/slog"
	"time"

	"bookstore-api/internal/domain/user"
	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
	DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	logger  *slog.Logger
}

func NewUserRepository(queries UserWriteQueries, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username().String(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email().Value(),
		IsStaff:      u.IsStaff(),
		IsActive:     u.IsActive(),
		DateJoined:   pgconv.TimeToPgtype(u.DateJoined()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapPgErr(r.logger, "failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapPgErr(r.logger, "failed to find user by ID", err)
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	affected, err := r.queries.UpdateUserProfile(ctx, tx, sqlc.UpdateUserProfileParams{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email().Value(),
	})
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update user profile", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, sqlc.UpdateUserLastLoginParams{ID: id, LastLogin: pgconv.TimeToPgtype(at)})
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteUser(ctx, tx, id)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func toDomainUser(row sqlc.Users) *user.User {
	return user.Reconstruct(
		row.ID,
		row.Username,
		row.PasswordHash,
		user.Profile{FirstName: row.FirstName, LastName: row.LastName, Email: row.Email},
		row.IsStaff,
		row.IsActive,
		pgconv.TimeFromPgtype(row.DateJoined),
		pgconv.TimePtrFromPgtype(row.LastLogin),
	)
}
