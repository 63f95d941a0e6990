package reservation

import (
	"errors"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

type Quantity struct {
	value int32
}

func NewQuantity(n int64) (Quantity, error) {
	if n <= 0 || n > 1<<31-1 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: int32(n)}, nil
}

func (q Quantity) Value() int32 {
	return q.value
}
