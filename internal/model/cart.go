package model

const (
	MaxItemQuantity = 10
	MaxCartItems    = 20
	ShippingFee     = 5.00

	// CartStorageKey is the secure store key suffix holding a session's cart.
	CartStorageKey = "steakhouse_cart"
)

// CartLine is a menu item plus the requested quantity, always in [1, MaxItemQuantity].
type CartLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shippingFee"`
	Total       float64 `json:"total"`
}
