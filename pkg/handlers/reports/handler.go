package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mltpascual/ordertaker/pkg/adapters"
	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/server/middleware"
	"github.com/rs/zerolog"
)

const defaultRange = domain.RangeWeekly

// Service renders a sales report for one user anchored at a reference
// instant.
type Service interface {
	SalesReport(
		ctx context.Context,
		userID string,
		rng domain.ReportRange,
		sourceSort domain.SourceSort,
		now time.Time,
	) (domain.SalesReport, error)
}

type Handler struct {
	svc Service
	now func() time.Time
}

func NewHandler(svc Service) *Handler {
	return NewHandlerWithClock(svc, time.Now)
}

func NewHandlerWithClock(svc Service, now func() time.Time) *Handler {
	return &Handler{svc: svc, now: now}
}

// SalesReport handles GET /reports/sales. Query parameters: range
// (daily|weekly|monthly|all, default weekly), sort (count|revenue, default
// count) and at (RFC3339 reference instant, default now; used by clients
// replaying historical views).
func (h *Handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rng := defaultRange
	if raw := r.URL.Query().Get("range"); raw != "" {
		rng = domain.ReportRange(raw)
		if !rng.Valid() {
			http.Error(w, "invalid range; expected daily, weekly, monthly or all", http.StatusBadRequest)
			return
		}
	}

	sourceSort := domain.SourceSortByCount
	switch r.URL.Query().Get("sort") {
	case "", string(domain.SourceSortByCount):
	case string(domain.SourceSortByRevenue):
		sourceSort = domain.SourceSortByRevenue
	default:
		http.Error(w, "invalid sort; expected count or revenue", http.StatusBadRequest)
		return
	}

	now := h.now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "invalid 'at' instant. Expected RFC3339", http.StatusBadRequest)
			return
		}
		now = parsed
	}

	result, err := h.svc.SalesReport(ctx, middleware.UserFromContext(ctx), rng, sourceSort, now)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("range", string(rng)).Msg("failed to render sales report")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapDomainReportToApi(result)); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode sales report")
	}
}
