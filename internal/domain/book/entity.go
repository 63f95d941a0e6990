package book

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficientStock = errors.New("not enough books in stock")
	ErrInvalidDelta      = errors.New("stock delta must be positive")
	ErrStockOverflow     = errors.New("stock would exceed the storable maximum")
)

type Book struct {
	id         uuid.UUID
	title      Label
	author     Label
	genre      Label
	stock      Stock
	popularity int32
	imageURL   *string
	createdAt  time.Time
	updatedAt  time.Time
}

type Fields struct {
	Title    string
	Author   string
	Genre    string
	Quantity int32
	ImageURL *string
}

func (f Fields) validate() (title, author, genre Label, stock Stock, imageURL *string, err error) {
	if title, err = NewTitle(f.Title); err != nil {
		return
	}
	if author, err = NewAuthor(f.Author); err != nil {
		return
	}
	if genre, err = NewGenre(f.Genre); err != nil {
		return
	}
	if stock, err = NewStock(f.Quantity); err != nil {
		return
	}
	imageURL, err = normalizeImageURL(f.ImageURL)
	return
}

func NewBook(f Fields, now time.Time) (*Book, error) {
	title, author, genre, stock, imageURL, err := f.validate()
	if err != nil {
		return nil, err
	}
	return &Book{
		id:        uuid.New(),
		title:     title,
		author:    author,
		genre:     genre,
		stock:     stock,
		imageURL:  imageURL,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Book from storage without re-validating.
func Reconstruct(id uuid.UUID, f Fields, popularity int32, createdAt, updatedAt time.Time) *Book {
	return &Book{
		id:         id,
		title:      Label{value: f.Title},
		author:     Label{value: f.Author},
		genre:      Label{value: f.Genre},
		stock:      Stock{value: f.Quantity},
		popularity: popularity,
		imageURL:   f.ImageURL,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Replace overwrites every editable field. Popularity is maintained elsewhere.
func (b *Book) Replace(f Fields, now time.Time) error {
	title, author, genre, stock, imageURL, err := f.validate()
	if err != nil {
		return err
	}
	b.title, b.author, b.genre, b.stock, b.imageURL = title, author, genre, stock, imageURL
	b.updatedAt = now
	return nil
}

func (b *Book) CanWithdraw(qty int32) error {
	if qty <= 0 {
		return ErrInvalidDelta
	}
	if b.stock.value < qty {
		return ErrInsufficientStock
	}
	return nil
}

func (b *Book) Withdraw(qty int32) error {
	if err := b.CanWithdraw(qty); err != nil {
		return err
	}
	b.stock.value -= qty
	return nil
}

func (b *Book) CanRestock(qty int32) error {
	if qty <= 0 {
		return ErrInvalidDelta
	}
	if qty > math.MaxInt32-b.stock.value {
		return ErrStockOverflow
	}
	return nil
}

func (b *Book) Restock(qty int32) error {
	if err := b.CanRestock(qty); err != nil {
		return err
	}
	b.stock.value += qty
	return nil
}

func (b *Book) ID() uuid.UUID        { return b.id }
func (b *Book) Title() Label         { return b.title }
func (b *Book) Author() Label        { return b.author }
func (b *Book) Genre() Label         { return b.genre }
func (b *Book) Quantity() int32      { return b.stock.value }
func (b *Book) Popularity() int32    { return b.popularity }
func (b *Book) ImageURL() *string    { return b.imageURL }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }
