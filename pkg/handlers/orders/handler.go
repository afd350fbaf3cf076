package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mltpascual/ordertaker/pkg/adapters"
	"github.com/mltpascual/ordertaker/pkg/models/api"
	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/models/store"
	"github.com/mltpascual/ordertaker/pkg/server/middleware"
	orderssvc "github.com/mltpascual/ordertaker/pkg/services/orders"
	"github.com/rs/zerolog"
)

// Service is the slice of the order service the handler consumes.
type Service interface {
	Create(ctx context.Context, userID string, draft orderssvc.Draft) (domain.Order, error)
	Update(ctx context.Context, userID, id string, draft orderssvc.Draft) (domain.Order, error)
	Complete(ctx context.Context, userID, id string) (domain.Order, error)
	Reopen(ctx context.Context, userID, id string) (domain.Order, error)
	Duplicate(ctx context.Context, userID, id string) (domain.Order, error)
	Get(ctx context.Context, userID, id string) (domain.Order, error)
	List(ctx context.Context, userID string) ([]domain.Order, error)
	Delete(ctx context.Context, userID, id string) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Create(ctx, middleware.UserFromContext(ctx), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, adapters.MapDomainOrderToApi(order))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.List(ctx, middleware.UserFromContext(ctx))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, adapters.MapDomainOrderToApi(o))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := h.svc.Get(ctx, middleware.UserFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainOrderToApi(order))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Update(ctx, middleware.UserFromContext(ctx), chi.URLParam(r, "id"), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainOrderToApi(order))
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Complete)
}

func (h *Handler) Reopen(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Reopen)
}

func (h *Handler) Duplicate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := h.svc.Duplicate(ctx, middleware.UserFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, adapters.MapDomainOrderToApi(order))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.Delete(ctx, middleware.UserFromContext(ctx), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, userID, id string) (domain.Order, error),
) {
	ctx := r.Context()

	order, err := apply(ctx, middleware.UserFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainOrderToApi(order))
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (orderssvc.Draft, bool) {
	var req api.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return orderssvc.Draft{}, false
	}

	return orderssvc.Draft{
		CustomerName: req.CustomerName,
		Source:       req.Source,
		Notes:        req.Notes,
		Items:        adapters.MapApiOrderItemsToDomain(req.Items),
		PickupDate:   req.PickupDate,
		PickupTime:   req.PickupTime,
	}, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, orderssvc.ErrCustomerNameRequired),
		errors.Is(err, orderssvc.ErrSourceRequired),
		errors.Is(err, orderssvc.ErrNoItems):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("order request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
