package request

import (
	"bookstore-api/internal/domain/book"
)

// BookRequest is used for both create and full replacement.
type BookRequest struct {
	Title    string  `json:"title" binding:"required,max=100"`
	Author   string  `json:"author" binding:"required,max=100"`
	Genre    string  `json:"genre" binding:"required,max=100"`
	Quantity *int32  `json:"quantity" binding:"required,min=0"`
	ImageURL *string `json:"image_url"`
}

func (r *BookRequest) ToDomain() book.Fields {
	var qty int32
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	return book.Fields{
		Title:    r.Title,
		Author:   r.Author,
		Genre:    r.Genre,
		Quantity: qty,
		ImageURL: r.ImageURL,
	}
}
