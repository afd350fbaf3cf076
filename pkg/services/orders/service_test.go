package orders

import (
	"context"
	"testing"
	"time"

	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderStore struct {
	mock.Mock
}

func (m *mockOrderStore) Insert(ctx context.Context, order store.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderStore) Get(ctx context.Context, userID, id string) (store.Order, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(store.Order), args.Error(1)
}

func (m *mockOrderStore) List(ctx context.Context, userID string) ([]store.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]store.Order), args.Error(1)
}

func (m *mockOrderStore) Replace(ctx context.Context, order store.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderStore) SetStatus(ctx context.Context, userID, id, status string, completedAt *time.Time) error {
	args := m.Called(ctx, userID, id, status, completedAt)
	return args.Error(0)
}

func (m *mockOrderStore) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

var fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestService(st *mockOrderStore) *Service {
	return NewServiceWithClock(st, func() time.Time { return fixedNow })
}

func validDraft() Draft {
	return Draft{
		CustomerName: "Maria",
		Source:       "Walk-in",
		Items: []domain.OrderItem{
			{MenuItemID: "itm-1", Name: "Latte", BasePrice: 4.5, Quantity: 2},
			{MenuItemID: "itm-2", Name: "Muffin", BasePrice: 3.0, Quantity: 1},
		},
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Draft)
		expectedErr error
	}{
		{
			name:        "missing customer name",
			mutate:      func(d *Draft) { d.CustomerName = "  " },
			expectedErr: ErrCustomerNameRequired,
		},
		{
			name:        "missing source",
			mutate:      func(d *Draft) { d.Source = "" },
			expectedErr: ErrSourceRequired,
		},
		{
			name:        "no items",
			mutate:      func(d *Draft) { d.Items = nil },
			expectedErr: ErrNoItems,
		},
		{
			name: "all items zero quantity",
			mutate: func(d *Draft) {
				for i := range d.Items {
					d.Items[i].Quantity = 0
				}
			},
			expectedErr: ErrNoItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := new(mockOrderStore)
			svc := newTestService(st)

			draft := validDraft()
			tt.mutate(&draft)

			_, err := svc.Create(context.Background(), "user-1", draft)
			assert.ErrorIs(t, err, tt.expectedErr)
			st.AssertNotCalled(t, "Insert")
		})
	}
}

func TestCreate_PendingWithComputedTotal(t *testing.T) {
	st := new(mockOrderStore)
	st.On("Insert", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(st)

	order, err := svc.Create(context.Background(), "user-1", validDraft())
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Nil(t, order.CompletedAt)
	assert.Equal(t, fixedNow, order.Timestamp)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, 12.0, order.Total)
	assert.Regexp(t, `^ord-[0-9a-f]{8}$`, order.ID)

	st.AssertExpectations(t)
}

func TestCreate_DropsZeroQuantityLines(t *testing.T) {
	st := new(mockOrderStore)
	st.On("Insert", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(st)

	draft := validDraft()
	draft.Items = append(draft.Items, domain.OrderItem{Name: "Removed", BasePrice: 99, Quantity: 0})

	order, err := svc.Create(context.Background(), "user-1", draft)
	require.NoError(t, err)

	assert.Len(t, order.Items, 2)
	assert.Equal(t, 12.0, order.Total)
}

func TestUpdate_RecomputesTotalPreservesTimestampAndStatus(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	completedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	st := new(mockOrderStore)
	st.On("Get", mock.Anything, "user-1", "ord-aaaa1111").Return(store.Order{
		ID:           "ord-aaaa1111",
		UserID:       "user-1",
		CustomerName: "Maria",
		Source:       "Walk-in",
		Items:        []store.OrderItem{{Name: "Latte", BasePrice: 4.5, Quantity: 1}},
		Status:       string(domain.OrderStatusCompleted),
		Total:        4.5,
		Timestamp:    created,
		CompletedAt:  &completedAt,
	}, nil)
	st.On("Replace", mock.Anything, mock.MatchedBy(func(o store.Order) bool {
		return o.ID == "ord-aaaa1111" && o.Total == 9.0
	})).Return(nil)

	svc := newTestService(st)

	draft := validDraft()
	draft.Items = []domain.OrderItem{{Name: "Latte", BasePrice: 4.5, Quantity: 2}}

	order, err := svc.Update(context.Background(), "user-1", "ord-aaaa1111", draft)
	require.NoError(t, err)

	assert.Equal(t, 9.0, order.Total)
	assert.Equal(t, created, order.Timestamp)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)

	st.AssertExpectations(t)
}

func TestComplete_StampsCompletionInstant(t *testing.T) {
	st := new(mockOrderStore)
	st.On("SetStatus", mock.Anything, "user-1", "ord-aaaa1111",
		string(domain.OrderStatusCompleted), mock.MatchedBy(func(at *time.Time) bool {
			return at != nil && at.Equal(fixedNow)
		})).Return(nil)
	st.On("Get", mock.Anything, "user-1", "ord-aaaa1111").Return(store.Order{
		ID:          "ord-aaaa1111",
		UserID:      "user-1",
		Status:      string(domain.OrderStatusCompleted),
		CompletedAt: &fixedNow,
	}, nil)

	svc := newTestService(st)

	order, err := svc.Complete(context.Background(), "user-1", "ord-aaaa1111")
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, fixedNow, *order.CompletedAt)

	st.AssertExpectations(t)
}

func TestReopen_ClearsCompletionInstant(t *testing.T) {
	st := new(mockOrderStore)
	st.On("SetStatus", mock.Anything, "user-1", "ord-aaaa1111",
		string(domain.OrderStatusPending), (*time.Time)(nil)).Return(nil)
	st.On("Get", mock.Anything, "user-1", "ord-aaaa1111").Return(store.Order{
		ID:     "ord-aaaa1111",
		UserID: "user-1",
		Status: string(domain.OrderStatusPending),
	}, nil)

	svc := newTestService(st)

	order, err := svc.Reopen(context.Background(), "user-1", "ord-aaaa1111")
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Nil(t, order.CompletedAt)

	st.AssertExpectations(t)
}

func TestComplete_NotFound(t *testing.T) {
	st := new(mockOrderStore)
	st.On("SetStatus", mock.Anything, "user-1", "ord-missing",
		string(domain.OrderStatusCompleted), mock.Anything).Return(store.ErrNotFound)

	svc := newTestService(st)

	_, err := svc.Complete(context.Background(), "user-1", "ord-missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	st.AssertNotCalled(t, "Get")
}

func TestDuplicate_ResetsLifecycleFields(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	completedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	st := new(mockOrderStore)
	st.On("Get", mock.Anything, "user-1", "ord-aaaa1111").Return(store.Order{
		ID:           "ord-aaaa1111",
		UserID:       "user-1",
		CustomerName: "Maria",
		Source:       "Instagram",
		Notes:        "no sugar",
		Items:        []store.OrderItem{{Name: "Latte", BasePrice: 4.5, Quantity: 2}},
		PickupDate:   "2025-06-02",
		PickupTime:   "10:00",
		Status:       string(domain.OrderStatusCompleted),
		Total:        9.0,
		Timestamp:    created,
		CompletedAt:  &completedAt,
	}, nil)
	st.On("Insert", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(st)

	order, err := svc.Duplicate(context.Background(), "user-1", "ord-aaaa1111")
	require.NoError(t, err)

	assert.NotEqual(t, "ord-aaaa1111", order.ID)
	assert.Equal(t, "Maria", order.CustomerName)
	assert.Equal(t, "Instagram", order.Source)
	assert.Equal(t, "no sugar", order.Notes)
	assert.Equal(t, 9.0, order.Total)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Nil(t, order.CompletedAt)
	assert.Empty(t, order.PickupDate)
	assert.Empty(t, order.PickupTime)
	assert.Equal(t, fixedNow, order.Timestamp)

	st.AssertExpectations(t)
}

func TestList_MapsStoreRecords(t *testing.T) {
	st := new(mockOrderStore)
	st.On("List", mock.Anything, "user-1").Return([]store.Order{
		{ID: "ord-bbbb2222", UserID: "user-1", Status: string(domain.OrderStatusPending)},
		{ID: "ord-aaaa1111", UserID: "user-1", Status: string(domain.OrderStatusCompleted)},
	}, nil)

	svc := newTestService(st)

	orders, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord-bbbb2222", orders[0].ID)
	assert.Equal(t, domain.OrderStatusCompleted, orders[1].Status)
}
