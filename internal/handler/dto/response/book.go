package response

import (
	"bookstore-api/internal/usecase/queries"
)

type BookResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	Genre      string  `json:"genre"`
	Quantity   int32   `json:"quantity"`
	Popularity int32   `json:"popularity"`
	ImageURL   *string `json:"image_url"`
}

func FromBookView(v queries.BookView) BookResponse {
	var res BookResponse
	mustCopy(&res, &v)
	return res
}
