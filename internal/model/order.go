package model

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "Credit Card"
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
)

// Order is the record forwarded to the remote order-submission endpoint.
// Items holds the JSON encoding of []OrderItem.
type Order struct {
	OrderNumber     string        `json:"orderNumber"`
	OrderTime       string        `json:"orderTime"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	DeliveryAddress string        `json:"deliveryAddress"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	OrderNotes      string        `json:"orderNotes,omitempty"`
	Items           string        `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	ShippingFee     float64       `json:"shippingFee"`
	Total           float64       `json:"total"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// APIResponse is the order endpoint's reply.
type APIResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderNumber string `json:"orderNumber,omitempty"`
}

// Confirmation is returned to the shopper after a successful submission.
type Confirmation struct {
	Order   Order      `json:"order"`
	Lines   []CartLine `json:"lines"`
	Message string     `json:"message"`
}
