package api

import "time"

// Order is the JSON shape returned by the orders endpoints.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Source       string      `json:"source"`
	Notes        string      `json:"notes,omitempty"`
	Items        []OrderItem `json:"items"`
	PickupDate   string      `json:"pickup_date"`
	PickupTime   string      `json:"pickup_time"`
	Status       string      `json:"status"`
	Total        float64     `json:"total"`
	Timestamp    time.Time   `json:"timestamp"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
}

type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	BasePrice  float64 `json:"base_price"`
	Quantity   int     `json:"quantity"`
	Note       string  `json:"note,omitempty"`
}

// CreateOrderRequest is the payload for creating or replacing an order.
type CreateOrderRequest struct {
	CustomerName string      `json:"customer_name"`
	Source       string      `json:"source"`
	Notes        string      `json:"notes"`
	Items        []OrderItem `json:"items"`
	PickupDate   string      `json:"pickup_date"`
	PickupTime   string      `json:"pickup_time"`
}

type MenuItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	Category  string  `json:"category"`
	Available bool    `json:"available"`
}

type SaveMenuItemRequest struct {
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	Category  string  `json:"category"`
	Available bool    `json:"available"`
}
