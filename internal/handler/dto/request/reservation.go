package request

import (
	"github.com/google/uuid"
)

// Customer defaults to the caller's own profile.
type CreateReservationRequest struct {
	Book     uuid.UUID  `json:"book" binding:"required"`
	Customer *uuid.UUID `json:"customer"`
	Quantity int64      `json:"quantity" binding:"required"`
}
