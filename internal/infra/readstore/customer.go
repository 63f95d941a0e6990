package readstore

import (
	"context"
	"log/slog"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	GetCustomerView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCustomerViewRow, error)
	GetCustomerIDByUsername(ctx context.Context, db sqlc.DBTX, username string) (uuid.UUID, error)
	ListCustomerViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomerViewsParams) ([]sqlc.ListCustomerViewsRow, error)
	CountCustomers(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX, logger *slog.Logger) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", err)
		}
		return nil, infra.WrapPgErr(r.logger, "failed to get customer view", err)
	}
	view := toCustomerView(sqlc.ListCustomerViewsRow(row))
	return &view, nil
}

func (r *CustomerReadStore) FindIDByUsername(ctx context.Context, username string) (uuid.UUID, error) {
	id, err := r.queries.GetCustomerIDByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", err)
		}
		return uuid.Nil, infra.WrapPgErr(r.logger, "failed to find customer by username", err)
	}
	return id, nil
}

func (r *CustomerReadStore) List(ctx context.Context, limit, offset int32) ([]queries.CustomerView, int64, error) {
	count, err := r.queries.CountCustomers(ctx, r.db)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to count customers", err)
	}
	rows, err := r.queries.ListCustomerViews(ctx, r.db, sqlc.ListCustomerViewsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to list customers", err)
	}

	views := make([]queries.CustomerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCustomerView(row))
	}
	return views, count, nil
}

func toCustomerView(row sqlc.ListCustomerViewsRow) queries.CustomerView {
	return queries.CustomerView{
		ID:     row.ID,
		UserID: row.UserID,
		User: queries.CustomerUserView{
			Username:   row.Username,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Email:      row.Email,
			DateJoined: pgconv.TimeFromPgtype(row.DateJoined),
		},
		MailingAddress:      pgconv.StringPtrFromPgtype(row.MailingAddress),
		MaxReservations:     row.MaxReservations,
		CurrentReservations: row.CurrentReservations,
	}
}
