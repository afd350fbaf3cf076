package adapters

import (
	"github.com/mltpascual/ordertaker/pkg/models/api"
	"github.com/mltpascual/ordertaker/pkg/models/domain"
)

func MapDomainReportToApi(r domain.SalesReport) api.SalesReport {
	return api.SalesReport{
		Range:       string(r.Range),
		GeneratedAt: r.GeneratedAt,
		Trend:       mapTrendPoints(r.Trend),
		Metrics:     MapDomainMetricsToApi(r.Metrics),
	}
}

func MapDomainMetricsToApi(m domain.Metrics) api.Metrics {
	out := api.Metrics{
		TotalOrders:       m.TotalOrders,
		TotalRevenue:      m.TotalRevenue,
		AverageOrderValue: m.AverageOrderValue,
		TopSellingItems:   mapItemStats(m.TopSellingItems),
		TopEarningItems:   mapItemStats(m.TopEarningItems),
		BySource:          []api.SourceStat{},
		ByCategory:        []api.CategoryStat{},
	}

	for _, s := range m.BySource {
		out.BySource = append(out.BySource, api.SourceStat(s))
	}
	for _, c := range m.ByCategory {
		items := make([]api.CategoryItemStat, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, api.CategoryItemStat(it))
		}
		out.ByCategory = append(out.ByCategory, api.CategoryStat{
			Category:      c.Category,
			TotalQuantity: c.TotalQuantity,
			TotalRevenue:  c.TotalRevenue,
			Items:         items,
		})
	}
	return out
}

func mapTrendPoints(points []domain.TrendPoint) []api.TrendPoint {
	out := make([]api.TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, api.TrendPoint(p))
	}
	return out
}

func mapItemStats(stats []domain.ItemStat) []api.ItemStat {
	out := make([]api.ItemStat, 0, len(stats))
	for _, s := range stats {
		out = append(out, api.ItemStat(s))
	}
	return out
}
