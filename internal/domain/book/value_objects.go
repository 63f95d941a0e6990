package book

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxLabelLength = 100

var (
	ErrInvalidTitle    = errors.New("title must be between 1 and 100 characters")
	ErrInvalidAuthor   = errors.New("author must be between 1 and 100 characters")
	ErrInvalidGenre    = errors.New("genre must be between 1 and 100 characters")
	ErrInvalidQuantity = errors.New("quantity must be a non-negative integer")
	ErrInvalidImageURL = errors.New("image_url must be an absolute http(s) URL")
)

// Label is the shared shape of title, author and genre.
type Label struct {
	value string
}

func newLabel(s string, errInvalid error) (Label, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n == 0 || n > MaxLabelLength {
		return Label{}, errInvalid
	}
	return Label{value: s}, nil
}

func NewTitle(s string) (Label, error)  { return newLabel(s, ErrInvalidTitle) }
func NewAuthor(s string) (Label, error) { return newLabel(s, ErrInvalidAuthor) }
func NewGenre(s string) (Label, error)  { return newLabel(s, ErrInvalidGenre) }

func (l Label) String() string {
	return l.value
}

// Stock is the number of copies on the shelf.
type Stock struct {
	value int32
}

func NewStock(n int32) (Stock, error) {
	if n < 0 {
		return Stock{}, ErrInvalidQuantity
	}
	return Stock{value: n}, nil
}

func (s Stock) Value() int32 {
	return s.value
}

func normalizeImageURL(u *string) (*string, error) {
	if u == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*u)
	if v == "" {
		return nil, nil
	}
	if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
		return nil, ErrInvalidImageURL
	}
	return &v, nil
}
