package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mltpascual/ordertaker/pkg/adapters"
	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/models/store"
)

// Validation failures surfaced to callers. The handler layer maps these to
// 400 responses.
var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrSourceRequired       = errors.New("order source is required")
	ErrNoItems              = errors.New("order must have at least one item")
)

// Store is the order persistence contract the service depends on.
type Store interface {
	Insert(ctx context.Context, order store.Order) error
	Get(ctx context.Context, userID, id string) (store.Order, error)
	List(ctx context.Context, userID string) ([]store.Order, error)
	Replace(ctx context.Context, order store.Order) error
	SetStatus(ctx context.Context, userID, id, status string, completedAt *time.Time) error
	Delete(ctx context.Context, userID, id string) error
}

// Draft carries the caller-editable fields of an order.
type Draft struct {
	CustomerName string
	Source       string
	Notes        string
	Items        []domain.OrderItem
	PickupDate   string
	PickupTime   string
}

// Service implements the order lifecycle: create, edit, the two status
// transitions, duplication and deletion. The clock is injectable so status
// transitions are testable against a fixed instant.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return NewServiceWithClock(store, time.Now)
}

func NewServiceWithClock(store Store, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// Create validates the draft, prices it and persists a new pending order.
// Lines with a non-positive quantity are treated as removed and are never
// persisted.
func (s *Service) Create(ctx context.Context, userID string, draft Draft) (domain.Order, error) {
	items, err := validateDraft(draft)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:           newOrderID(),
		UserID:       userID,
		CustomerName: strings.TrimSpace(draft.CustomerName),
		Source:       strings.TrimSpace(draft.Source),
		Notes:        draft.Notes,
		Items:        items,
		PickupDate:   draft.PickupDate,
		PickupTime:   draft.PickupTime,
		Status:       domain.OrderStatusPending,
		Timestamp:    s.now().UTC(),
	}
	order.Total = order.ComputeTotal()

	if err := s.store.Insert(ctx, adapters.MapDomainOrderToStore(order)); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// Update replaces the editable fields of an existing order and recomputes
// its total. Creation timestamp and status are untouched.
func (s *Service) Update(ctx context.Context, userID, id string, draft Draft) (domain.Order, error) {
	items, err := validateDraft(draft)
	if err != nil {
		return domain.Order{}, err
	}

	existing, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return domain.Order{}, err
	}

	order := adapters.MapStoreOrderToDomain(existing)
	order.CustomerName = strings.TrimSpace(draft.CustomerName)
	order.Source = strings.TrimSpace(draft.Source)
	order.Notes = draft.Notes
	order.Items = items
	order.PickupDate = draft.PickupDate
	order.PickupTime = draft.PickupTime
	order.Total = order.ComputeTotal()

	if err := s.store.Replace(ctx, adapters.MapDomainOrderToStore(order)); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// Complete transitions an order to completed and stamps the completion
// instant. The transition is unconditional and reversible.
func (s *Service) Complete(ctx context.Context, userID, id string) (domain.Order, error) {
	completedAt := s.now().UTC()
	if err := s.store.SetStatus(ctx, userID, id, string(domain.OrderStatusCompleted), &completedAt); err != nil {
		return domain.Order{}, err
	}
	return s.Get(ctx, userID, id)
}

// Reopen transitions an order back to pending and clears the completion
// instant.
func (s *Service) Reopen(ctx context.Context, userID, id string) (domain.Order, error) {
	if err := s.store.SetStatus(ctx, userID, id, string(domain.OrderStatusPending), nil); err != nil {
		return domain.Order{}, err
	}
	return s.Get(ctx, userID, id)
}

// Duplicate seeds a new pending order from an existing one: items, customer
// and source are copied; pickup slot, status, completion and creation
// instants are reset.
func (s *Service) Duplicate(ctx context.Context, userID, id string) (domain.Order, error) {
	source, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return domain.Order{}, err
	}

	original := adapters.MapStoreOrderToDomain(source)
	order := domain.Order{
		ID:           newOrderID(),
		UserID:       userID,
		CustomerName: original.CustomerName,
		Source:       original.Source,
		Notes:        original.Notes,
		Items:        append([]domain.OrderItem(nil), original.Items...),
		Status:       domain.OrderStatusPending,
		Timestamp:    s.now().UTC(),
	}
	order.Total = order.ComputeTotal()

	if err := s.store.Insert(ctx, adapters.MapDomainOrderToStore(order)); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (domain.Order, error) {
	record, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return domain.Order{}, err
	}
	return adapters.MapStoreOrderToDomain(record), nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Order, error) {
	records, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, adapters.MapStoreOrderToDomain(record))
	}
	return orders, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.store.Delete(ctx, userID, id)
}

func validateDraft(draft Draft) ([]domain.OrderItem, error) {
	if strings.TrimSpace(draft.CustomerName) == "" {
		return nil, ErrCustomerNameRequired
	}
	if strings.TrimSpace(draft.Source) == "" {
		return nil, ErrSourceRequired
	}

	items := make([]domain.OrderItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

func newOrderID() string {
	return fmt.Sprintf("ord-%s", uuid.New().String()[:8])
}
