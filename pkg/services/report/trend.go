package report

import (
	"fmt"
	"time"

	"github.com/mltpascual/ordertaker/pkg/models/domain"
)

// Fixed bucket counts per range. Buckets with no matching orders report
// zero revenue, never fewer points.
const (
	dailyBuckets   = 24
	weeklyBuckets  = 7
	monthlyBuckets = 4
	allBuckets     = 6
)

// ComputeTrend partitions completed-order revenue into a fixed number of
// time buckets sized to the selected range. It re-filters to completed
// status internally, so it is safe to pass a raw snapshot; pending orders
// and, for bounded ranges, orders outside the bucket windows contribute
// nothing.
func ComputeTrend(orders []domain.Order, rng domain.ReportRange, now time.Time) []domain.TrendPoint {
	completed := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == domain.OrderStatusCompleted {
			completed = append(completed, o)
		}
	}

	switch rng {
	case domain.RangeDaily:
		return hourlyTrend(completed, now)
	case domain.RangeWeekly:
		return dailyTrend(completed, now)
	case domain.RangeMonthly:
		return rollingWeekTrend(completed, now)
	default:
		return monthlyTrend(completed, now)
	}
}

// hourlyTrend buckets revenue by hour of the reference instant's calendar
// day, labeled in 12-hour clock form.
func hourlyTrend(orders []domain.Order, now time.Time) []domain.TrendPoint {
	points := make([]domain.TrendPoint, dailyBuckets)
	for h := range points {
		points[h].Label = hourLabel(h)
	}

	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	for _, o := range orders {
		ts := o.Timestamp.In(now.Location())
		if ts.Before(today) || !ts.Before(tomorrow) {
			continue
		}
		points[ts.Hour()].Revenue += o.Total
	}
	return points
}

// dailyTrend produces one bucket per calendar day from now-6d through now,
// oldest first, labeled by the bucket date's weekday.
func dailyTrend(orders []domain.Order, now time.Time) []domain.TrendPoint {
	points := make([]domain.TrendPoint, weeklyBuckets)
	starts := make([]time.Time, weeklyBuckets)

	today := startOfDay(now)
	for i := range points {
		day := today.AddDate(0, 0, i-(weeklyBuckets-1))
		starts[i] = day
		points[i].Label = day.Format("Mon")
	}

	for _, o := range orders {
		ts := o.Timestamp.In(now.Location())
		for i, start := range starts {
			if !ts.Before(start) && ts.Before(start.AddDate(0, 0, 1)) {
				points[i].Revenue += o.Total
				break
			}
		}
	}
	return points
}

// rollingWeekTrend produces four consecutive 7-day windows, the most recent
// ending at the reference instant. The label shows the window's first and
// last included days, e.g. "Jan 25-Jan 31".
func rollingWeekTrend(orders []domain.Order, now time.Time) []domain.TrendPoint {
	points := make([]domain.TrendPoint, monthlyBuckets)
	bounds := make([][2]time.Time, monthlyBuckets)

	for i := range points {
		weeksBack := monthlyBuckets - 1 - i
		end := now.AddDate(0, 0, -7*weeksBack)
		start := end.AddDate(0, 0, -7)
		bounds[i] = [2]time.Time{start, end}
		points[i].Label = fmt.Sprintf("%s-%s",
			start.Format("Jan 2"), end.AddDate(0, 0, -1).Format("Jan 2"))
	}

	for _, o := range orders {
		for i, b := range bounds {
			if !o.Timestamp.Before(b[0]) && o.Timestamp.Before(b[1]) {
				points[i].Revenue += o.Total
				break
			}
		}
	}
	return points
}

// monthlyTrend produces one bucket per calendar month, from five months
// before the current month through the current month. Month starts are
// inclusive, the next month's start exclusive.
func monthlyTrend(orders []domain.Order, now time.Time) []domain.TrendPoint {
	points := make([]domain.TrendPoint, allBuckets)
	starts := make([]time.Time, allBuckets)

	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := range points {
		start := currentMonth.AddDate(0, i-(allBuckets-1), 0)
		starts[i] = start
		points[i].Label = start.Format("Jan")
	}

	for _, o := range orders {
		ts := o.Timestamp.In(now.Location())
		for i, start := range starts {
			if !ts.Before(start) && ts.Before(start.AddDate(0, 1, 0)) {
				points[i].Revenue += o.Total
				break
			}
		}
	}
	return points
}

func hourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12AM"
	case hour < 12:
		return fmt.Sprintf("%dAM", hour)
	case hour == 12:
		return "12PM"
	default:
		return fmt.Sprintf("%dPM", hour-12)
	}
}
