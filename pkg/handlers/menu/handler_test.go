package menu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mltpascual/ordertaker/pkg/models/api"
	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/models/store"
	"github.com/mltpascual/ordertaker/pkg/server/middleware"
	menusvc "github.com/mltpascual/ordertaker/pkg/services/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMenuService struct {
	mock.Mock
}

func (m *mockMenuService) Create(ctx context.Context, userID string, draft menusvc.Draft) (domain.MenuItem, error) {
	args := m.Called(ctx, userID, draft)
	return args.Get(0).(domain.MenuItem), args.Error(1)
}

func (m *mockMenuService) Update(ctx context.Context, userID, id string, draft menusvc.Draft) (domain.MenuItem, error) {
	args := m.Called(ctx, userID, id, draft)
	return args.Get(0).(domain.MenuItem), args.Error(1)
}

func (m *mockMenuService) Get(ctx context.Context, userID, id string) (domain.MenuItem, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(domain.MenuItem), args.Error(1)
}

func (m *mockMenuService) List(ctx context.Context, userID string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *mockMenuService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func setupRouter(svc *mockMenuService) *chi.Mux {
	h := NewHandler(svc)

	router := chi.NewRouter()
	router.Use(middleware.UserScope)
	router.Get("/menu", h.List)
	router.Post("/menu", h.Create)
	router.Get("/menu/{id}", h.Get)
	router.Put("/menu/{id}", h.Update)
	router.Delete("/menu/{id}", h.Delete)
	return router
}

func doRequest(router *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(middleware.UserHeader, "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockMenuService)
		expectedStatus int
	}{
		{
			name: "successful creation",
			body: `{"name":"Latte","base_price":4.5,"category":"Drinks","available":true}`,
			setupMock: func(m *mockMenuService) {
				m.On("Create", mock.Anything, "user-1", menusvc.Draft{
					Name:      "Latte",
					BasePrice: 4.5,
					Category:  "Drinks",
					Available: true,
				}).Return(domain.MenuItem{
					ID:        "itm-aaaa1111",
					UserID:    "user-1",
					Name:      "Latte",
					BasePrice: 4.5,
					Category:  "Drinks",
					Available: true,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{"name":`,
			setupMock:      func(m *mockMenuService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: `{"name":"","base_price":4.5}`,
			setupMock: func(m *mockMenuService) {
				m.On("Create", mock.Anything, "user-1", mock.Anything).
					Return(domain.MenuItem{}, menusvc.ErrNameRequired)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockMenuService)
			tt.setupMock(svc)

			rec := doRequest(setupRouter(svc), "POST", "/menu", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusCreated {
				var response api.MenuItem
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, "itm-aaaa1111", response.ID)
				assert.Equal(t, "Drinks", response.Category)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := new(mockMenuService)
	svc.On("Get", mock.Anything, "user-1", "itm-missing").
		Return(domain.MenuItem{}, store.ErrNotFound)

	rec := doRequest(setupRouter(svc), "GET", "/menu/itm-missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}

func TestList_EmptyIsJSONArray(t *testing.T) {
	svc := new(mockMenuService)
	svc.On("List", mock.Anything, "user-1").Return([]domain.MenuItem{}, nil)

	rec := doRequest(setupRouter(svc), "GET", "/menu", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDelete(t *testing.T) {
	svc := new(mockMenuService)
	svc.On("Delete", mock.Anything, "user-1", "itm-aaaa1111").Return(nil)

	rec := doRequest(setupRouter(svc), "DELETE", "/menu/itm-aaaa1111", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}
