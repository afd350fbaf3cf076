package store

import "time"

// Order is the document persisted in the orders collection. Every document
// carries the owning user's id; queries are always scoped by it.
type Order struct {
	ID           string      `bson:"_id"`
	UserID       string      `bson:"user_id"`
	CustomerName string      `bson:"customer_name"`
	Source       string      `bson:"source"`
	Notes        string      `bson:"notes,omitempty"`
	Items        []OrderItem `bson:"items"`
	PickupDate   string      `bson:"pickup_date"`
	PickupTime   string      `bson:"pickup_time"`
	Status       string      `bson:"status"`
	Total        float64     `bson:"total"`
	Timestamp    time.Time   `bson:"timestamp"`
	CompletedAt  *time.Time  `bson:"completed_at,omitempty"`
}

type OrderItem struct {
	MenuItemID string  `bson:"menu_item_id"`
	Name       string  `bson:"name"`
	BasePrice  float64 `bson:"base_price"`
	Quantity   int     `bson:"quantity"`
	Note       string  `bson:"note,omitempty"`
}
