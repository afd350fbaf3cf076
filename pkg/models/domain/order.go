package domain

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// CustomItemPrefix marks order lines created ad hoc, outside the menu catalog.
const CustomItemPrefix = "custom-"

// OrderItem is a single line on an order. BasePrice is the unit price at the
// time the line was created, decoupled from the current catalog price.
type OrderItem struct {
	MenuItemID string
	Name       string
	BasePrice  float64
	Quantity   int
	Note       string
}

// IsCustom reports whether the line refers to an ad hoc item rather than a
// catalog entry.
func (i OrderItem) IsCustom() bool {
	return strings.HasPrefix(i.MenuItemID, CustomItemPrefix)
}

// Order is the aggregate root of the domain. Timestamp is the creation
// instant and drives report bucketing; PickupDate/PickupTime describe the
// requested fulfillment slot and may be days ahead of Timestamp.
type Order struct {
	ID           string
	UserID       string
	CustomerName string
	Source       string
	Notes        string
	Items        []OrderItem
	PickupDate   string // YYYY-MM-DD
	PickupTime   string // HH:MM, 24-hour
	Status       OrderStatus
	Total        float64
	Timestamp    time.Time
	CompletedAt  *time.Time
}

// ComputeTotal returns the sum of unit price times quantity across all lines.
func (o Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.BasePrice * float64(item.Quantity)
	}
	return total
}
