package api

import "time"

type TrendPoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

type ItemStat struct {
	Name          string  `json:"name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	Percentage    float64 `json:"percentage"`
}

type SourceStat struct {
	Source  string  `json:"source"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type CategoryItemStat struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Percentage float64 `json:"percentage"`
}

type CategoryStat struct {
	Category      string             `json:"category"`
	TotalQuantity int                `json:"total_quantity"`
	TotalRevenue  float64            `json:"total_revenue"`
	Items         []CategoryItemStat `json:"items"`
}

type Metrics struct {
	TotalOrders       int            `json:"total_orders"`
	TotalRevenue      float64        `json:"total_revenue"`
	AverageOrderValue float64        `json:"average_order_value"`
	TopSellingItems   []ItemStat     `json:"top_selling_items"`
	TopEarningItems   []ItemStat     `json:"top_earning_items"`
	BySource          []SourceStat   `json:"by_source"`
	ByCategory        []CategoryStat `json:"by_category"`
}

type SalesReport struct {
	Range       string       `json:"range"`
	GeneratedAt time.Time    `json:"generated_at"`
	Trend       []TrendPoint `json:"trend"`
	Metrics     Metrics      `json:"metrics"`
}
