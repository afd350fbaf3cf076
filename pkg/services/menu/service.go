package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mltpascual/ordertaker/pkg/adapters"
	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/models/store"
	"github.com/mltpascual/ordertaker/pkg/services/report"
)

var (
	ErrNameRequired  = errors.New("menu item name is required")
	ErrNegativePrice = errors.New("menu item price cannot be negative")
)

type Store interface {
	Insert(ctx context.Context, item store.MenuItem) error
	Get(ctx context.Context, userID, id string) (store.MenuItem, error)
	List(ctx context.Context, userID string) ([]store.MenuItem, error)
	Replace(ctx context.Context, item store.MenuItem) error
	Delete(ctx context.Context, userID, id string) error
}

type Draft struct {
	Name      string
	BasePrice float64
	Category  string
	Available bool
}

// Service owns the menu catalog and exposes the category resolver the
// reporting core consumes. The reporting core never reads the catalog
// directly.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, userID string, draft Draft) (domain.MenuItem, error) {
	if err := validateDraft(draft); err != nil {
		return domain.MenuItem{}, err
	}

	item := domain.MenuItem{
		ID:        fmt.Sprintf("itm-%s", uuid.New().String()[:8]),
		UserID:    userID,
		Name:      strings.TrimSpace(draft.Name),
		BasePrice: draft.BasePrice,
		Category:  draft.Category,
		Available: draft.Available,
	}

	if err := s.store.Insert(ctx, adapters.MapDomainMenuItemToStore(item)); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, draft Draft) (domain.MenuItem, error) {
	if err := validateDraft(draft); err != nil {
		return domain.MenuItem{}, err
	}

	existing, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return domain.MenuItem{}, err
	}

	item := adapters.MapStoreMenuItemToDomain(existing)
	item.Name = strings.TrimSpace(draft.Name)
	item.BasePrice = draft.BasePrice
	item.Category = draft.Category
	item.Available = draft.Available

	if err := s.store.Replace(ctx, adapters.MapDomainMenuItemToStore(item)); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (domain.MenuItem, error) {
	record, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return domain.MenuItem{}, err
	}
	return adapters.MapStoreMenuItemToDomain(record), nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.MenuItem, error) {
	records, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.MenuItem, 0, len(records))
	for _, record := range records {
		items = append(items, adapters.MapStoreMenuItemToDomain(record))
	}
	return items, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.store.Delete(ctx, userID, id)
}

// Resolver builds the category lookup injected into the metrics aggregator
// from a catalog snapshot. Lookup is by display name; unknown names resolve
// to the empty string and the aggregator applies its own fallback label.
func (s *Service) Resolver(ctx context.Context, userID string) (report.CategoryFunc, error) {
	records, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]string, len(records))
	for _, record := range records {
		byName[record.Name] = record.Category
	}

	return func(name, _ string) string {
		return byName[name]
	}, nil
}

func validateDraft(draft Draft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return ErrNameRequired
	}
	if draft.BasePrice < 0 {
		return ErrNegativePrice
	}
	return nil
}
