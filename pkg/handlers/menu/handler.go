package menu

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
	menusvc "github.com/mltpascual/ordertaker/pkg/services/menu"
	"github.com/rs/zerolog"
)

type Service interface {
	Create(ctx context.Context, userID string, draft menusvc.Draft) (domain.MenuItem, error)
	Update(ctx context.Context, userID, id string, draft menusvc.Draft) (domain.MenuItem, error)
	Get(ctx context.Context, userID, id string) (domain.MenuItem, error)
	List(ctx context.Context, userID string) ([]domain.MenuItem, error)
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

	item, err := h.svc.Create(ctx, middleware.UserFromContext(ctx), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, adapters.MapDomainMenuItemToApi(item))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.svc.List(ctx, middleware.UserFromContext(ctx))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.MenuItem, 0, len(items))
	for _, item := range items {
		response = append(response, adapters.MapDomainMenuItemToApi(item))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	item, err := h.svc.Get(ctx, middleware.UserFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainMenuItemToApi(item))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Update(ctx, middleware.UserFromContext(ctx), chi.URLParam(r, "id"), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainMenuItemToApi(item))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.Delete(ctx, middleware.UserFromContext(ctx), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (menusvc.Draft, bool) {
	var req api.SaveMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return menusvc.Draft{}, false
	}

	return menusvc.Draft{
		Name:      req.Name,
		BasePrice: req.BasePrice,
		Category:  req.Category,
		Available: req.Available,
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
		http.Error(w, "menu item not found", http.StatusNotFound)
	case errors.Is(err, menusvc.ErrNameRequired), errors.Is(err, menusvc.ErrNegativePrice):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("menu request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
