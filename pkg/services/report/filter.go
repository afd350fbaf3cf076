package report

import (
	"time"

	"github.com/mltpascual/ordertaker/pkg/models/domain"
)

// FilterByRange returns the completed orders whose creation timestamp falls
// inside the requested window, anchored at the caller-supplied reference
// instant. Pending orders never appear in reports regardless of range. The
// input slice is never mutated and relative order is preserved.
//
// The lower bound is inclusive and there is no upper bound: a completed
// order with a future timestamp is still included.
func FilterByRange(orders []domain.Order, rng domain.ReportRange, now time.Time) []domain.Order {
	lower, bounded := rangeStart(rng, now)

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status != domain.OrderStatusCompleted {
			continue
		}
		if bounded && o.Timestamp.Before(lower) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// rangeStart resolves the inclusive lower bound of a range. The second
// return value is false for RangeAll, which has no time restriction.
//
// Monthly subtraction uses time.Time.AddDate, which normalizes overflow
// (e.g. March 31 minus one month lands on March 2 or 3 depending on the
// February length) rather than clamping to the month end.
func rangeStart(rng domain.ReportRange, now time.Time) (time.Time, bool) {
	today := startOfDay(now)

	switch rng {
	case domain.RangeDaily:
		return today, true
	case domain.RangeWeekly:
		return today.AddDate(0, 0, -7), true
	case domain.RangeMonthly:
		return today.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

// startOfDay returns midnight of t's calendar date in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
