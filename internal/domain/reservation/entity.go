package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation holds quantity units of a book for a customer while the row exists.
type Reservation struct {
	id         uuid.UUID
	customerID uuid.UUID
	bookID     uuid.UUID
	quantity   Quantity
	date       time.Time
}

func NewReservation(customerID, bookID uuid.UUID, qty Quantity, now time.Time) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		customerID: customerID,
		bookID:     bookID,
		quantity:   qty,
		date:       now,
	}
}

func ReconstructReservation(id, customerID, bookID uuid.UUID, quantity int32, date time.Time) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		bookID:     bookID,
		quantity:   Quantity{value: quantity},
		date:       date,
	}
}

// BelongsTo reports whether the reservation is owned by the given customer.
func (r *Reservation) BelongsTo(customerID uuid.UUID) bool {
	return r.customerID == customerID
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) BookID() uuid.UUID     { return r.bookID }
func (r *Reservation) Quantity() int32       { return r.quantity.value }
func (r *Reservation) Date() time.Time       { return r.date }
