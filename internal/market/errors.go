package market

import "errors"

var (
	ErrListNotFound    = errors.New("list not found")
	ErrEmptyName       = errors.New("item name is required")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidUnit     = errors.New("unit must be \"un\" or \"kg\"")
)
