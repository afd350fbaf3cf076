package menu

import (
	"context"
	"testing"

	"github.com/mltpascual/ordertaker/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMenuStore struct {
	mock.Mock
}

func (m *mockMenuStore) Insert(ctx context.Context, item store.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockMenuStore) Get(ctx context.Context, userID, id string) (store.MenuItem, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(store.MenuItem), args.Error(1)
}

func (m *mockMenuStore) List(ctx context.Context, userID string) ([]store.MenuItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]store.MenuItem), args.Error(1)
}

func (m *mockMenuStore) Replace(ctx context.Context, item store.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockMenuStore) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name        string
		draft       Draft
		expectedErr error
	}{
		{
			name:        "blank name",
			draft:       Draft{Name: "   ", BasePrice: 4.5},
			expectedErr: ErrNameRequired,
		},
		{
			name:        "negative price",
			draft:       Draft{Name: "Latte", BasePrice: -1},
			expectedErr: ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := new(mockMenuStore)
			svc := NewService(st)

			_, err := svc.Create(context.Background(), "user-1", tt.draft)
			assert.ErrorIs(t, err, tt.expectedErr)
			st.AssertNotCalled(t, "Insert")
		})
	}
}

func TestCreate_AssignsPrefixedID(t *testing.T) {
	st := new(mockMenuStore)
	st.On("Insert", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(st)

	item, err := svc.Create(context.Background(), "user-1", Draft{
		Name:      "  Latte  ",
		BasePrice: 4.5,
		Category:  "Drinks",
		Available: true,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^itm-[0-9a-f]{8}$`, item.ID)
	assert.Equal(t, "Latte", item.Name)
	assert.Equal(t, "user-1", item.UserID)
	assert.Equal(t, "Drinks", item.Category)

	st.AssertExpectations(t)
}

func TestUpdate_ZeroPriceAllowed(t *testing.T) {
	st := new(mockMenuStore)
	st.On("Get", mock.Anything, "user-1", "itm-aaaa1111").Return(store.MenuItem{
		ID:        "itm-aaaa1111",
		UserID:    "user-1",
		Name:      "Latte",
		BasePrice: 4.5,
		Category:  "Drinks",
	}, nil)
	st.On("Replace", mock.Anything, mock.MatchedBy(func(item store.MenuItem) bool {
		return item.BasePrice == 0 && item.Category == "Specials"
	})).Return(nil)

	svc := NewService(st)

	item, err := svc.Update(context.Background(), "user-1", "itm-aaaa1111", Draft{
		Name:      "Latte",
		BasePrice: 0,
		Category:  "Specials",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, item.BasePrice)

	st.AssertExpectations(t)
}

func TestResolver_LooksUpByName(t *testing.T) {
	st := new(mockMenuStore)
	st.On("List", mock.Anything, "user-1").Return([]store.MenuItem{
		{ID: "itm-1", Name: "Latte", Category: "Drinks"},
		{ID: "itm-2", Name: "Brownie", Category: "Dessert"},
		{ID: "itm-3", Name: "Mystery"},
	}, nil)

	svc := NewService(st)

	resolve, err := svc.Resolver(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Drinks", resolve("Latte", "itm-1"))
	assert.Equal(t, "Dessert", resolve("Brownie", "itm-2"))
	assert.Equal(t, "", resolve("Mystery", "itm-3"))
	assert.Equal(t, "", resolve("Never Seen", ""))
}
