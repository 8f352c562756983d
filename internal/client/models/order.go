package models

// Order statuses as used by the store API.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipping  = "SHIPPING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// PaymentMethodCOD is the only payment method the store currently supports.
const PaymentMethodCOD = "COD"

type OrderItem struct {
	ID              int64   `json:"id"`
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	Subtotal        float64 `json:"subtotal"`
	ProductImageURL string  `json:"productImageUrl,omitempty"`
}

type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"userId"`
	Username        string      `json:"username"`
	UserEmail       string      `json:"userEmail"`
	TotalPrice      float64     `json:"totalPrice"`
	Status          string      `json:"status"`
	PaymentMethod   string      `json:"paymentMethod"`
	ShippingAddress string      `json:"shippingAddress"`
	RecipientName   string      `json:"recipientName"`
	RecipientPhone  string      `json:"recipientPhone"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items"`
	CreatedAt       string      `json:"createdAt,omitempty"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
}

// CartItemRequest is one order line as the API expects it.
type CartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type OrderRequest struct {
	Items           []CartItemRequest `json:"items"`
	ShippingAddress string            `json:"shippingAddress"`
	RecipientName   string            `json:"recipientName"`
	RecipientPhone  string            `json:"recipientPhone"`
	Notes           string            `json:"notes,omitempty"`
	PaymentMethod   string            `json:"paymentMethod,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
