package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mltpascual/ordertaker/pkg/adapters"
	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/models/store"
	rediscache "github.com/mltpascual/ordertaker/pkg/store/redis"
	"github.com/rs/zerolog"
)

// Computed reports stay valid for one cache bucket; a new bucket forces a
// full recomputation from a fresh snapshot.
const cacheBucket = 5 * time.Minute

// OrderSource supplies the full order snapshot for one user.
type OrderSource interface {
	List(ctx context.Context, userID string) ([]store.Order, error)
}

// CategorySource supplies the injected category lookup.
type CategorySource interface {
	Resolver(ctx context.Context, userID string) (CategoryFunc, error)
}

// Cache is an optional read-through cache for rendered reports.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}) error
}

// Service assembles sales reports: load snapshot, resolve categories, run
// the filter/trend/metrics pipeline. Each render is one atomic computation
// over the snapshot; a concurrent store update simply produces a fresh
// report on the next render.
type Service struct {
	orders     OrderSource
	categories CategorySource
	cache      Cache
}

// NewService wires the report assembly. cache may be nil, in which case
// every render recomputes.
func NewService(orders OrderSource, categories CategorySource, cache Cache) *Service {
	return &Service{orders: orders, categories: categories, cache: cache}
}

// SalesReport renders the report for one user, range and source sort key,
// anchored at the caller-supplied reference instant.
func (s *Service) SalesReport(
	ctx context.Context,
	userID string,
	rng domain.ReportRange,
	sourceSort domain.SourceSort,
	now time.Time,
) (domain.SalesReport, error) {
	logger := zerolog.Ctx(ctx)

	key := cacheKey(userID, rng, sourceSort, now)
	if s.cache != nil {
		var cached domain.SalesReport
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, rediscache.ErrCacheMiss) {
			logger.Warn().Err(err).Str("key", key).Msg("report cache read failed")
		}
	}

	records, err := s.orders.List(ctx, userID)
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("failed to load order snapshot: %w", err)
	}

	orders := make([]domain.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, adapters.MapStoreOrderToDomain(record))
	}

	categoryOf, err := s.categories.Resolver(ctx, userID)
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("failed to build category resolver: %w", err)
	}

	filtered := FilterByRange(orders, rng, now)
	result := domain.SalesReport{
		Range:       rng,
		GeneratedAt: now,
		Trend:       ComputeTrend(filtered, rng, now),
		Metrics:     ComputeMetricsSorted(filtered, categoryOf, sourceSort),
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, result); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("report cache write failed")
		}
	}

	logger.Debug().
		Str("range", string(rng)).
		Int("orders", result.Metrics.TotalOrders).
		Msg("sales report computed")

	return result, nil
}

func cacheKey(userID string, rng domain.ReportRange, sourceSort domain.SourceSort, now time.Time) string {
	bucket := now.Truncate(cacheBucket).UTC().Format(time.RFC3339)
	return fmt.Sprintf("report:%s:%s:%s:%s", userID, rng, sourceSort, bucket)
}
