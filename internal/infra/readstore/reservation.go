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

type ReservationReadQueries interface {
	ListReservationViewsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ListReservationViewsByCustomerRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ReservationReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list reservations by customer", err)
	}

	views := make([]queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.ReservationView{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			Book: queries.BookView{
				ID:         row.BookID,
				Title:      row.Title,
				Author:     row.Author,
				Genre:      row.Genre,
				Quantity:   row.BookQuantity,
				Popularity: row.Popularity,
				ImageURL:   pgconv.StringPtrFromPgtype(row.ImageUrl),
			},
			Quantity: row.Quantity,
			Date:     pgconv.TimeFromPgtype(row.Date),
		})
	}
	return views, nil
}
