//go:build unit || e2e

package builder

import (
	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	UserID              uuid.UUID
	MailingAddress      *string
	MaxReservations     int32
	CurrentReservations int32
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		UserID:          uuid.New(),
		MaxReservations: customer.DefaultMaxReservations,
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

func (c *CustomerBuilder) WithQuota(maxReservations, current int32) *CustomerBuilder {
	c.MaxReservations = maxReservations
	c.CurrentReservations = current
	return c
}

func (c *CustomerBuilder) BuildDomain() *customer.Customer {
	return c.BuildReconstructed(uuid.New())
}

func (c *CustomerBuilder) BuildReconstructed(id uuid.UUID) *customer.Customer {
	return customer.Reconstruct(id, c.UserID, c.MailingAddress, c.MaxReservations, c.CurrentReservations, FixedTime, FixedTime)
}

func (c *CustomerBuilder) BuildView() queries.CustomerView {
	return queries.CustomerView{
		ID:     uuid.New(),
		UserID: c.UserID,
		User: queries.CustomerUserView{
			Username:   "reader",
			FirstName:  "Ada",
			LastName:   "Reader",
			Email:      "reader@example.com",
			DateJoined: FixedTime,
		},
		MailingAddress:      c.MailingAddress,
		MaxReservations:     c.MaxReservations,
		CurrentReservations: c.CurrentReservations,
	}
}
