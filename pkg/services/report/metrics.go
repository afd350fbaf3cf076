package report

import (
	"math"
	"sort"

	"github.com/mltpascual/ordertaker/pkg/models/domain"
)

// CategoryFunc resolves the menu category of an order line. Returning an
// empty string means the item has no resolvable category.
type CategoryFunc func(name, menuItemID string) string

// Labels for lines that cannot be attributed to a catalog category.
const (
	categoryCustom        = "Custom"
	categoryUncategorized = "Uncategorized"
	sourceUnknown         = "Unknown"
)

const topItemsLimit = 10

// ComputeMetrics aggregates a filtered order set into display-ready totals
// and rankings, with the per-source breakdown sorted by count descending.
func ComputeMetrics(orders []domain.Order, categoryOf CategoryFunc) domain.Metrics {
	return ComputeMetricsSorted(orders, categoryOf, domain.SourceSortByCount)
}

// ComputeMetricsSorted is ComputeMetrics with an explicit sort key for the
// per-source breakdown. It is a pure function: no I/O, no mutation of the
// input, and identical output for identical input. Malformed input degrades
// (missing fields default, non-finite prices propagate into totals) rather
// than panicking.
func ComputeMetricsSorted(
	orders []domain.Order,
	categoryOf CategoryFunc,
	sourceSort domain.SourceSort,
) domain.Metrics {
	metrics := domain.Metrics{
		TotalOrders:     len(orders),
		TopSellingItems: []domain.ItemStat{},
		TopEarningItems: []domain.ItemStat{},
		BySource:        []domain.SourceStat{},
		ByCategory:      []domain.CategoryStat{},
	}

	items := newItemAccumulator()
	sources := map[string]*domain.SourceStat{}
	var sourceOrder []string
	categories := newCategoryAccumulator(categoryOf)

	for _, o := range orders {
		metrics.TotalRevenue += o.Total

		source := o.Source
		if source == "" {
			source = sourceUnknown
		}
		stat, ok := sources[source]
		if !ok {
			stat = &domain.SourceStat{Source: source}
			sources[source] = stat
			sourceOrder = append(sourceOrder, source)
		}
		stat.Count++
		stat.Revenue += o.Total

		for _, line := range o.Items {
			items.add(line)
			categories.add(line)
		}
	}

	if metrics.TotalOrders > 0 {
		metrics.AverageOrderValue = round2(metrics.TotalRevenue / float64(metrics.TotalOrders))
	}

	metrics.TopSellingItems = items.topBy(func(a, b *itemAgg) bool {
		return a.quantity > b.quantity
	}, func(it *itemAgg) float64 {
		return float64(it.quantity)
	})
	metrics.TopEarningItems = items.topBy(func(a, b *itemAgg) bool {
		return a.revenue > b.revenue
	}, func(it *itemAgg) float64 {
		return it.revenue
	})

	for _, name := range sourceOrder {
		metrics.BySource = append(metrics.BySource, *sources[name])
	}
	if sourceSort == domain.SourceSortByRevenue {
		sort.SliceStable(metrics.BySource, func(i, j int) bool {
			return metrics.BySource[i].Revenue > metrics.BySource[j].Revenue
		})
	} else {
		sort.SliceStable(metrics.BySource, func(i, j int) bool {
			return metrics.BySource[i].Count > metrics.BySource[j].Count
		})
	}

	metrics.ByCategory = categories.ranked()

	return metrics
}

// itemAgg accumulates one display-name group. Grouping is by name, not by
// menu item id: the name is the display identity used for ranking, so a
// custom line sharing a name with a catalog item merges with it.
type itemAgg struct {
	name     string
	quantity int
	revenue  float64
}

type itemAccumulator struct {
	byName map[string]*itemAgg
	order  []*itemAgg // first-encounter order, the tie-break for rankings
}

func newItemAccumulator() *itemAccumulator {
	return &itemAccumulator{byName: map[string]*itemAgg{}}
}

func (a *itemAccumulator) add(line domain.OrderItem) {
	agg, ok := a.byName[line.Name]
	if !ok {
		agg = &itemAgg{name: line.Name}
		a.byName[line.Name] = agg
		a.order = append(a.order, agg)
	}
	agg.quantity += line.Quantity
	agg.revenue += line.BasePrice * float64(line.Quantity)
}

// topBy returns the ten highest-ranked groups under less, stably sorted so
// ties keep first-encounter order, with each entry's percentage relative to
// the top-ranked entry of the returned list.
func (a *itemAccumulator) topBy(less func(a, b *itemAgg) bool, value func(*itemAgg) float64) []domain.ItemStat {
	ranked := make([]*itemAgg, len(a.order))
	copy(ranked, a.order)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })

	if len(ranked) > topItemsLimit {
		ranked = ranked[:topItemsLimit]
	}

	stats := make([]domain.ItemStat, 0, len(ranked))
	var max float64
	if len(ranked) > 0 {
		max = value(ranked[0])
	}
	for _, agg := range ranked {
		stats = append(stats, domain.ItemStat{
			Name:          agg.name,
			TotalQuantity: agg.quantity,
			TotalRevenue:  agg.revenue,
			Percentage:    percentOf(value(agg), max),
		})
	}
	return stats
}

type categoryAgg struct {
	name     string
	quantity int
	revenue  float64
	items    *itemAccumulator
}

type categoryAccumulator struct {
	categoryOf CategoryFunc
	byName     map[string]*categoryAgg
	order      []*categoryAgg
}

func newCategoryAccumulator(categoryOf CategoryFunc) *categoryAccumulator {
	return &categoryAccumulator{categoryOf: categoryOf, byName: map[string]*categoryAgg{}}
}

func (a *categoryAccumulator) add(line domain.OrderItem) {
	category := a.resolve(line)
	agg, ok := a.byName[category]
	if !ok {
		agg = &categoryAgg{name: category, items: newItemAccumulator()}
		a.byName[category] = agg
		a.order = append(a.order, agg)
	}
	agg.quantity += line.Quantity
	agg.revenue += line.BasePrice * float64(line.Quantity)
	agg.items.add(line)
}

// resolve attributes a line to a category. Ad hoc lines always land in
// "Custom", even when their name collides with a catalog item.
func (a *categoryAccumulator) resolve(line domain.OrderItem) string {
	if line.IsCustom() {
		return categoryCustom
	}
	if a.categoryOf != nil {
		if category := a.categoryOf(line.Name, line.MenuItemID); category != "" {
			return category
		}
	}
	return categoryUncategorized
}

// ranked returns categories sorted by revenue descending, each carrying its
// item list sorted by quantity descending with percentages relative to the
// in-category maximum.
func (a *categoryAccumulator) ranked() []domain.CategoryStat {
	ordered := make([]*categoryAgg, len(a.order))
	copy(ordered, a.order)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].revenue > ordered[j].revenue })

	stats := make([]domain.CategoryStat, 0, len(ordered))
	for _, agg := range ordered {
		stat := domain.CategoryStat{
			Category:      agg.name,
			TotalQuantity: agg.quantity,
			TotalRevenue:  agg.revenue,
			Items:         []domain.CategoryItemStat{},
		}

		ranked := make([]*itemAgg, len(agg.items.order))
		copy(ranked, agg.items.order)
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].quantity > ranked[j].quantity })

		var max float64
		if len(ranked) > 0 {
			max = float64(ranked[0].quantity)
		}
		for _, item := range ranked {
			stat.Items = append(stat.Items, domain.CategoryItemStat{
				Name:       item.name,
				Quantity:   item.quantity,
				Percentage: percentOf(float64(item.quantity), max),
			})
		}
		stats = append(stats, stat)
	}
	return stats
}

func percentOf(value, max float64) float64 {
	if max == 0 {
		return 0
	}
	return 100 * value / max
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
