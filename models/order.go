package models

// Order status values. The remote sink owns transitions past Pending.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
)

// Order is the immutable checkout snapshot kept in the local history log.
type Order struct {
	OrderID        string     `json:"orderId"`
	RestaurantID   string     `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Items          []CartItem `json:"items"`
	Customer       Customer   `json:"customer"`
	Subtotal       float64    `json:"subtotal"`
	Tax            float64    `json:"tax"`
	DeliveryFee    float64    `json:"deliveryFee"`
	Total          float64    `json:"total"`
	OrderTime      string     `json:"orderTime"`
	Status         string     `json:"status"`
}

// Pricing is the computed breakdown handed from the cart to checkout.
type Pricing struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// OrderSubmissionResult is what the submission pipeline hands back to the
// caller. OrderID is always set so a failed submission can still be retried
// or referenced by the customer.
type OrderSubmissionResult struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}
