package response

import (
	"time"

	"bookstore-api/internal/usecase/queries"
)

type ReservationResponse struct {
	ID       string       `json:"id"`
	Customer string       `json:"customer"`
	Book     BookResponse `json:"book"`
	Quantity int32        `json:"quantity"`
	Date     time.Time    `json:"date"`
}

func FromReservationView(v queries.ReservationView) ReservationResponse {
	var res ReservationResponse
	mustCopy(&res, &v)
	res.Customer = v.CustomerID.String()
	return res
}

func FromReservationViews(items []queries.ReservationView) []ReservationResponse {
	res := make([]ReservationResponse, len(items))
	for i, it := range items {
		res[i] = FromReservationView(it)
	}
	return res
}
