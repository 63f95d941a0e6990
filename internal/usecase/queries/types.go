package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookView represents read-optimized book data
type BookView struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Genre      string    `json:"genre"`
	Quantity   int32     `json:"quantity"`
	Popularity int32     `json:"popularity"`
	ImageURL   *string   `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CustomerUserView struct {
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	DateJoined time.Time `json:"date_joined"`
}

// CustomerView represents a customer profile joined with its user
type CustomerView struct {
	ID                  uuid.UUID        `json:"id"`
	UserID              uuid.UUID        `json:"user_id"`
	User                CustomerUserView `json:"user"`
	MailingAddress      *string          `json:"mailing_address,omitempty"`
	MaxReservations     int32            `json:"max_reservations"`
	CurrentReservations int32            `json:"current_reservations"`
}

// ReservationView represents a reservation joined with its book
type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Book       BookView  `json:"book"`
	Quantity   int32     `json:"quantity"`
	Date       time.Time `json:"date"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	IsStaff    bool       `json:"is_staff"`
	IsActive   bool       `json:"is_active"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
}
