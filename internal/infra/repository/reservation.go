package repository

import (
	"context"
	"log/slog"

	"bookstore-api/internal/domain/reservation"
	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListReservationsByCustomerForUpdate(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.Reservations, error)
	ListReservationsByBookForUpdate(ctx context.Context, db sqlc.DBTX, bookID uuid.UUID) ([]sqlc.Reservations, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	logger  *slog.Logger
}

func NewReservationRepository(queries ReservationWriteQueries, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	id, err := r.queries.CreateReservation(ctx, tx, sqlc.CreateReservationParams{
		ID:         res.ID(),
		CustomerID: res.CustomerID(),
		BookID:     res.BookID(),
		Quantity:   res.Quantity(),
		Date:       pgconv.TimeToPgtype(res.Date()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapPgErr(r.logger, "failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapPgErr(r.logger, "failed to lock reservation", err)
	}
	return toDomainReservation(row), nil
}

func (r *ReservationRepository) ListByCustomerForUpdate(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByCustomerForUpdate(ctx, tx, customerID)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to lock reservations by customer", err)
	}
	return toDomainReservations(rows), nil
}

func (r *ReservationRepository) ListByBookForUpdate(ctx context.Context, tx sqlc.DBTX, bookID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByBookForUpdate(ctx, tx, bookID)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to lock reservations by book", err)
	}
	return toDomainReservations(rows), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

func toDomainReservation(row sqlc.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(row.ID, row.CustomerID, row.BookID, row.Quantity, pgconv.TimeFromPgtype(row.Date))
}

func toDomainReservations(rows []sqlc.Reservations) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainReservation(row))
	}
	return out
}
