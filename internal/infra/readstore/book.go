package readstore

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var pg = goqu.Dialect("postgres")

var bookColumns = []any{"id", "title", "author", "genre", "quantity", "popularity", "image_url", "created_at"}

type BookReadQueries interface {
	GetBookByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookByIDRow, error)
	ListBooks(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBooksParams) ([]sqlc.ListBooksRow, error)
	CountBooks(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type BookReadStore struct {
	queries BookReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewBookReadStore(queries BookReadQueries, db sqlc.DBTX, logger *slog.Logger) *BookReadStore {
	return &BookReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	row, err := r.queries.GetBookByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "book not found", err)
		}
		return nil, infra.WrapPgErr(r.logger, "failed to get book by id", err)
	}
	view := toBookView(row.ID, row.Title, row.Author, row.Genre, row.Quantity, row.Popularity, row.ImageUrl, row.CreatedAt)
	return &view, nil
}

func (r *BookReadStore) List(ctx context.Context, limit, offset int32) ([]queries.BookView, int64, error) {
	count, err := r.queries.CountBooks(ctx, r.db)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to count books", err)
	}
	rows, err := r.queries.ListBooks(ctx, r.db, sqlc.ListBooksParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to list books", err)
	}

	views := make([]queries.BookView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookView(row.ID, row.Title, row.Author, row.Genre, row.Quantity, row.Popularity, row.ImageUrl, row.CreatedAt))
	}
	return views, count, nil
}

// Search returns the de-duplicated union of substring, trigram and full-text matches.
func (r *BookReadStore) Search(ctx context.Context, query string, limit, offset int32) ([]queries.BookView, int64, error) {
	matches := searchDataset(query)

	var count int64
	countSQL, countArgs, err := pg.From(matches.As("matches")).Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build search count query", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&count); err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to count search results", err)
	}

	ds := pg.From(matches.As("matches")).
		Select(bookColumns...).
		Order(goqu.C("title").Asc(), goqu.C("id").Asc()).
		Limit(uint(limit)).
		Offset(uint(offset))
	views, err := r.collect(ctx, ds)
	if err != nil {
		return nil, 0, err
	}
	return views, count, nil
}

// Popular orders by popularity and never returns more than maxRows books in total.
func (r *BookReadStore) Popular(ctx context.Context, maxRows, limit, offset int32) ([]queries.BookView, int64, error) {
	total, err := r.queries.CountBooks(ctx, r.db)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to count books", err)
	}
	count := min(total, int64(maxRows))
	if int64(offset) >= count {
		return []queries.BookView{}, count, nil
	}
	limit = min(limit, int32(count)-offset)

	views, err := r.collect(ctx, popularDataset(limit, offset))
	if err != nil {
		return nil, 0, err
	}
	return views, count, nil
}

func (r *BookReadStore) collect(ctx context.Context, ds *goqu.SelectDataset) ([]queries.BookView, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build book query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to query books", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[bookRecord])
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to scan books", err)
	}

	views := make([]queries.BookView, 0, len(records))
	for _, rec := range records {
		views = append(views, toBookView(rec.ID, rec.Title, rec.Author, rec.Genre, rec.Quantity, rec.Popularity, rec.ImageURL, rec.CreatedAt))
	}
	return views, nil
}

type bookRecord struct {
	ID         uuid.UUID          `db:"id"`
	Title      string             `db:"title"`
	Author     string             `db:"author"`
	Genre      string             `db:"genre"`
	Quantity   int32              `db:"quantity"`
	Popularity int32              `db:"popularity"`
	ImageURL   pgtype.Text        `db:"image_url"`
	CreatedAt  pgtype.Timestamptz `db:"created_at"`
}

func searchDataset(query string) *goqu.SelectDataset {
	pattern := "%" + escapeLike(query) + "%"

	substring := pg.From("books").Select(bookColumns...).Where(goqu.Or(
		goqu.C("title").ILike(pattern),
		goqu.C("author").ILike(pattern),
		goqu.C("genre").ILike(pattern),
	))
	trigram := pg.From("books").Select(bookColumns...).Where(goqu.Or(
		goqu.L(`"title" % ?`, query),
		goqu.L(`"author" % ?`, query),
	))
	fullText := pg.From("books").Select(bookColumns...).Where(
		goqu.L(`"search_vector" @@ websearch_to_tsquery('english', ?)`, query),
	)

	return substring.Union(trigram).Union(fullText)
}

func popularDataset(limit, offset int32) *goqu.SelectDataset {
	return pg.From("books").
		Select(bookColumns...).
		Order(goqu.C("popularity").Desc(), goqu.C("id").Asc()).
		Limit(uint(limit)).
		Offset(uint(offset))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toBookView(id uuid.UUID, title, author, genre string, quantity, popularity int32, imageURL pgtype.Text, createdAt pgtype.Timestamptz) queries.BookView {
	return queries.BookView{
		ID:         id,
		Title:      title,
		Author:     author,
		Genre:      genre,
		Quantity:   quantity,
		Popularity: popularity,
		ImageURL:   pgconv.StringPtrFromPgtype(imageURL),
		CreatedAt:  pgconv.TimeFromPgtype(createdAt).In(time.UTC),
	}
}
