package service

import "errors"

var (
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrMaxQuantityReached = errors.New("maximum quantity for item reached")
	ErrCartFull           = errors.New("cart cannot hold more distinct items")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrSessionRequired    = errors.New("session id required")
	ErrOrderRejected      = errors.New("order submission rejected")
	ErrOrderUnavailable   = errors.New("order service unavailable")
)
