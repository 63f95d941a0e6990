package customer

import (
	"errors"
	"strings"
	"time"

	"bookstore-api/internal/pkg/ptr"

	"github.com/google/uuid"
)

const DefaultMaxReservations int32 = 30

var (
	ErrReservationLimitExceeded = errors.New("reservation limit exceeded")
	ErrReleaseExceedsHeld       = errors.New("release exceeds held reservations")
	ErrInvalidMaxReservations   = errors.New("max reservations must be non-negative")
	ErrInvalidDelta             = errors.New("reservation delta must be positive")
)

// Customer is the profile linked 1:1 to a user. The reservation counters are only
// moved through Reserve and Release.
type Customer struct {
	id                  uuid.UUID
	userID              uuid.UUID
	mailingAddress      *string
	maxReservations     int32
	currentReservations int32
	createdAt           time.Time
	updatedAt           time.Time
}

func NewCustomer(userID uuid.UUID, mailingAddress *string, maxReservations int32, now time.Time) (*Customer, error) {
	if maxReservations < 0 {
		return nil, ErrInvalidMaxReservations
	}
	return &Customer{
		id:              uuid.New(),
		userID:          userID,
		mailingAddress:  normalizeAddress(mailingAddress),
		maxReservations: maxReservations,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(id, userID uuid.UUID, mailingAddress *string, maxReservations, currentReservations int32, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:                  id,
		userID:              userID,
		mailingAddress:      mailingAddress,
		maxReservations:     maxReservations,
		currentReservations: currentReservations,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (c *Customer) CanReserve(qty int32) error {
	if qty <= 0 {
		return ErrInvalidDelta
	}
	// current <= max holds, so the subtraction cannot overflow where the sum could
	if qty > c.maxReservations-c.currentReservations {
		return ErrReservationLimitExceeded
	}
	return nil
}

func (c *Customer) Reserve(qty int32) error {
	if err := c.CanReserve(qty); err != nil {
		return err
	}
	c.currentReservations += qty
	return nil
}

func (c *Customer) Release(qty int32) error {
	if qty <= 0 {
		return ErrInvalidDelta
	}
	if c.currentReservations < qty {
		return ErrReleaseExceedsHeld
	}
	c.currentReservations -= qty
	return nil
}

func (c *Customer) ChangeMailingAddress(addr *string, now time.Time) {
	c.mailingAddress = normalizeAddress(addr)
	c.updatedAt = now
}

func normalizeAddress(addr *string) *string {
	if addr == nil {
		return nil
	}
	v := strings.TrimSpace(*addr)
	if v == "" {
		return nil
	}
	return ptr.Of(v)
}

func (c *Customer) ID() uuid.UUID                { return c.id }
func (c *Customer) UserID() uuid.UUID            { return c.userID }
func (c *Customer) MailingAddress() *string      { return c.mailingAddress }
func (c *Customer) MaxReservations() int32       { return c.maxReservations }
func (c *Customer) CurrentReservations() int32   { return c.currentReservations }
func (c *Customer) RemainingReservations() int32 { return c.maxReservations - c.currentReservations }
func (c *Customer) CreatedAt() time.Time         { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time         { return c.updatedAt }
