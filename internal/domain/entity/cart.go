package entity

// CartItem is a product snapshot with the quantity a customer wants.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
	Quantity  float64 `json:"quantity"`
}

// CustomerInfo is collected at checkout.
type CustomerInfo struct {
	Name          string `json:"name"`
	Location      string `json:"location"`
	PaymentMethod string `json:"paymentMethod"`
}
