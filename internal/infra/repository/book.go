package repository

import (
	"context"
	"log/slog"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookWriteQueries interface {
	CreateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookParams) (uuid.UUID, error)
	GetBookForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookForUpdateRow, error)
	UpdateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookParams) (int64, error)
	AdjustBookQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.AdjustBookQuantityParams) (int32, error)
	DeleteBook(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookRepository struct {
	queries BookWriteQueries
	logger  *slog.Logger
}

func NewBookRepository(queries BookWriteQueries, logger *slog.Logger) *BookRepository {
	return &BookRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *BookRepository) Create(ctx context.Context, tx sqlc.DBTX, b *book.Book) (uuid.UUID, error) {
	id, err := r.queries.CreateBook(ctx, tx, sqlc.CreateBookParams{
		ID:         b.ID(),
		Title:      b.Title().String(),
		Author:     b.Author().String(),
		Genre:      b.Genre().String(),
		Quantity:   b.Quantity(),
		Popularity: b.Popularity(),
		ImageUrl:   pgconv.StringPtrToPgtype(b.ImageURL()),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapPgErr(r.logger, "failed to create book", err)
	}
	return id, nil
}

// FindForUpdate takes a row lock held until the surrounding transaction ends.
func (r *BookRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*book.Book, error) {
	row, err := r.queries.GetBookForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "book not found", err)
		}
		return nil, infra.WrapPgErr(r.logger, "failed to lock book", err)
	}
	return book.Reconstruct(row.ID, book.Fields{
		Title:    row.Title,
		Author:   row.Author,
		Genre:    row.Genre,
		Quantity: row.Quantity,
		ImageURL: pgconv.StringPtrFromPgtype(row.ImageUrl),
	}, row.Popularity, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}

func (r *BookRepository) Update(ctx context.Context, tx sqlc.DBTX, b *book.Book) error {
	affected, err := r.queries.UpdateBook(ctx, tx, sqlc.UpdateBookParams{
		ID:        b.ID(),
		Title:     b.Title().String(),
		Author:    b.Author().String(),
		Genre:     b.Genre().String(),
		Quantity:  b.Quantity(),
		ImageUrl:  pgconv.StringPtrToPgtype(b.ImageURL()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update book", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "book not found", nil)
	}
	return nil
}

func (r *BookRepository) ApplyStockDelta(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, delta int32) (int32, error) {
	quantity, err := r.queries.AdjustBookQuantity(ctx, tx, sqlc.AdjustBookQuantityParams{Delta: delta, ID: id})
	if err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to adjust book quantity", err)
	}
	return quantity, nil
}

func (r *BookRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBook(ctx, tx, id)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete book", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "book not found", nil)
	}
	return nil
}
