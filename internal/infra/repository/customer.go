package repository

import (
	"context"
	"log/slog"

	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (uuid.UUID, error)
	GetCustomerForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
	UpdateCustomerMailingAddress(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomerMailingAddressParams) (int64, error)
	AdjustCustomerReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.AdjustCustomerReservationsParams) (sqlc.AdjustCustomerReservationsRow, error)
	DeleteCustomer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	logger  *slog.Logger
}

func NewCustomerRepository(queries CustomerWriteQueries, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (uuid.UUID, error) {
	id, err := r.queries.CreateCustomer(ctx, tx, sqlc.CreateCustomerParams{
		ID:                  c.ID(),
		UserID:              c.UserID(),
		MailingAddress:      pgconv.StringPtrToPgtype(c.MailingAddress()),
		MaxReservations:     c.MaxReservations(),
		CurrentReservations: c.CurrentReservations(),
		CreatedAt:           pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapPgErr(r.logger, "failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", err)
		}
		return nil, infra.WrapPgErr(r.logger, "failed to lock customer", err)
	}
	return customer.Reconstruct(
		row.ID,
		row.UserID,
		pgconv.StringPtrFromPgtype(row.MailingAddress),
		row.MaxReservations,
		row.CurrentReservations,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func (r *CustomerRepository) UpdateMailingAddress(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error {
	affected, err := r.queries.UpdateCustomerMailingAddress(ctx, tx, sqlc.UpdateCustomerMailingAddressParams{
		ID:             c.ID(),
		MailingAddress: pgconv.StringPtrToPgtype(c.MailingAddress()),
		UpdatedAt:      pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update customer", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", nil)
	}
	return nil
}

func (r *CustomerRepository) ApplyReservationDelta(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, delta int32) (shared.QuotaCounters, error) {
	row, err := r.queries.AdjustCustomerReservations(ctx, tx, sqlc.AdjustCustomerReservationsParams{Delta: delta, ID: id})
	if err != nil {
		return shared.QuotaCounters{}, infra.WrapPgErr(r.logger, "failed to adjust customer reservations", err)
	}
	return shared.QuotaCounters{Current: row.CurrentReservations, Max: row.MaxReservations}, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteCustomer(ctx, tx, id)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete customer", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", nil)
	}
	return nil
}
