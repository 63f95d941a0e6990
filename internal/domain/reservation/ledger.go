package reservation

import (
	"errors"
	"fmt"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/customer"
)

var ErrInvariantViolation = errors.New("reservation counters violate invariants")

// Reserve moves qty units from the book stock to the customer quota.
// Both checks run before either side is mutated, so a rejection leaves both untouched.
func Reserve(b *book.Book, c *customer.Customer, qty Quantity) error {
	if err := b.CanWithdraw(qty.value); err != nil {
		return err
	}
	if err := c.CanReserve(qty.value); err != nil {
		return err
	}
	if err := b.Withdraw(qty.value); err != nil {
		return err
	}
	return c.Reserve(qty.value)
}

// Release returns the units held by r to the book stock and the customer quota.
func Release(b *book.Book, c *customer.Customer, r *Reservation) error {
	if r.bookID != b.ID() || r.customerID != c.ID() {
		return fmt.Errorf("%w: reservation %s does not link book %s and customer %s", ErrInvariantViolation, r.id, b.ID(), c.ID())
	}
	// restock is checked first so a rejection leaves the customer untouched
	if err := b.CanRestock(r.quantity.value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	if err := c.Release(r.quantity.value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	return b.Restock(r.quantity.value)
}

// Counters are the committed values read back after a ledger write.
type Counters struct {
	BookQuantity        int32
	CurrentReservations int32
	MaxReservations     int32
}

func VerifyInvariants(c Counters) error {
	if c.BookQuantity < 0 {
		return fmt.Errorf("%w: book quantity %d", ErrInvariantViolation, c.BookQuantity)
	}
	if c.CurrentReservations < 0 || c.CurrentReservations > c.MaxReservations {
		return fmt.Errorf("%w: current %d max %d", ErrInvariantViolation, c.CurrentReservations, c.MaxReservations)
	}
	return nil
}
