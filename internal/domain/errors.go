package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidSort       = errors.New("invalid sort key")
	ErrInvalidPriceRange = errors.New("invalid price range")
)
