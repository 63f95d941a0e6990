//go:build unit || e2e

package builder

import (
	"time"

	"bookstore-api/internal/domain/book"
	reqdto "bookstore-api/internal/handler/dto/request"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// FixedTime keeps builder output deterministic.
var FixedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type BookBuilder struct {
	Title      string
	Author     string
	Genre      string
	Quantity   int32
	Popularity int32
	ImageURL   *string
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		Title:    "Dune",
		Author:   "Frank Herbert",
		Genre:    "Science Fiction",
		Quantity: 5,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) WithQuantity(n int32) *BookBuilder {
	b.Quantity = n
	return b
}

func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.Title = title
	return b
}

func (b *BookBuilder) WithPopularity(n int32) *BookBuilder {
	b.Popularity = n
	return b
}

func (b *BookBuilder) fields() book.Fields {
	return book.Fields{
		Title:    b.Title,
		Author:   b.Author,
		Genre:    b.Genre,
		Quantity: b.Quantity,
		ImageURL: b.ImageURL,
	}
}

// Build methods
func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	return book.NewBook(b.fields(), FixedTime)
}

func (b *BookBuilder) BuildReconstructed(id uuid.UUID) *book.Book {
	return book.Reconstruct(id, b.fields(), b.Popularity, FixedTime, FixedTime)
}

func (b *BookBuilder) BuildView() queries.BookView {
	return queries.BookView{
		ID:         uuid.New(),
		Title:      b.Title,
		Author:     b.Author,
		Genre:      b.Genre,
		Quantity:   b.Quantity,
		Popularity: b.Popularity,
		ImageURL:   b.ImageURL,
		CreatedAt:  FixedTime,
	}
}

func (b *BookBuilder) BuildInfra() sqlc.CreateBookParams {
	return sqlc.CreateBookParams{
		ID:         uuid.New(),
		Title:      b.Title,
		Author:     b.Author,
		Genre:      b.Genre,
		Quantity:   b.Quantity,
		Popularity: b.Popularity,
		ImageUrl:   pgconv.StringPtrToPgtype(b.ImageURL),
		CreatedAt:  pgconv.TimeToPgtype(FixedTime),
		UpdatedAt:  pgconv.TimeToPgtype(FixedTime),
	}
}

func (b *BookBuilder) BuildDTO() reqdto.BookRequest {
	return reqdto.BookRequest{
		Title:    b.Title,
		Author:   b.Author,
		Genre:    b.Genre,
		Quantity: &b.Quantity,
		ImageURL: b.ImageURL,
	}
}
