package shared

import (
	"context"
	"time"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/domain/reservation"
	"bookstore-api/internal/domain/user"
	sqlc "bookstore-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Books() BookRepository
	Customers() CustomerRepository
	Reservations() ReservationRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type BookRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *book.Book) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*book.Book, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *book.Book) error
	// ApplyStockDelta adds delta to the stored quantity and returns the committed value.
	ApplyStockDelta(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, delta int32) (int32, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type CustomerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*customer.Customer, error)
	UpdateMailingAddress(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error
	// ApplyReservationDelta adds delta to current_reservations and returns the committed counters.
	ApplyReservationDelta(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, delta int32) (QuotaCounters, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *reservation.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	ListByCustomerForUpdate(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) ([]*reservation.Reservation, error)
	ListByBookForUpdate(ctx context.Context, tx sqlc.DBTX, bookID uuid.UUID) ([]*reservation.Reservation, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}
