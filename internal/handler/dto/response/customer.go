package response

import (
	"time"

	"bookstore-api/internal/usecase/queries"
)

type CustomerUserResponse struct {
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	DateJoined time.Time `json:"date_joined"`
}

type CustomerResponse struct {
	ID                  string               `json:"id"`
	User                CustomerUserResponse `json:"user"`
	MailingAddress      *string              `json:"mailing_address"`
	MaxReservations     int32                `json:"max_reservations"`
	CurrentReservations int32                `json:"current_reservations"`
}

func FromCustomerView(v *queries.CustomerView) CustomerResponse {
	var res CustomerResponse
	mustCopy(&res, v)
	return res
}
