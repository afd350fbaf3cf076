package domain

import "time"

// ReportRange selects the reporting time window.
type ReportRange string

const (
	RangeDaily   ReportRange = "daily"
	RangeWeekly  ReportRange = "weekly"
	RangeMonthly ReportRange = "monthly"
	RangeAll     ReportRange = "all"
)

// Valid reports whether r is one of the four known ranges.
func (r ReportRange) Valid() bool {
	switch r {
	case RangeDaily, RangeWeekly, RangeMonthly, RangeAll:
		return true
	}
	return false
}

// SourceSort is the sort key for the per-source breakdown.
type SourceSort string

const (
	SourceSortByCount   SourceSort = "count"
	SourceSortByRevenue SourceSort = "revenue"
)

// TrendPoint is one time bucket of a revenue trend chart.
type TrendPoint struct {
	Label   string
	Revenue float64
}

// ItemStat is one entry of a ranked per-item breakdown. Percentage is
// relative to the top-ranked entry of the list it appears in.
type ItemStat struct {
	Name          string
	TotalQuantity int
	TotalRevenue  float64
	Percentage    float64
}

// SourceStat is the rollup for one origin channel.
type SourceStat struct {
	Source  string
	Count   int
	Revenue float64
}

// CategoryItemStat is one item inside a category rollup; Percentage is
// relative to the highest-quantity item of the same category.
type CategoryItemStat struct {
	Name       string
	Quantity   int
	Percentage float64
}

// CategoryStat groups order lines by menu category and carries the ranked
// item list used for bar-chart rendering.
type CategoryStat struct {
	Category      string
	TotalQuantity int
	TotalRevenue  float64
	Items         []CategoryItemStat
}

// Metrics is the full aggregate view over a filtered order set.
type Metrics struct {
	TotalOrders       int
	TotalRevenue      float64
	AverageOrderValue float64
	TopSellingItems   []ItemStat
	TopEarningItems   []ItemStat
	BySource          []SourceStat
	ByCategory        []CategoryStat
}

// SalesReport is the display-ready result of one report render.
type SalesReport struct {
	Range       ReportRange
	GeneratedAt time.Time
	Trend       []TrendPoint
	Metrics     Metrics
}
