package adapters

import (
	"github.com/mltpascual/ordertaker/pkg/models/api"
	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/models/store"
)

func MapStoreOrderToDomain(o store.Order) domain.Order {
	items := make([]domain.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			BasePrice:  it.BasePrice,
			Quantity:   it.Quantity,
			Note:       it.Note,
		})
	}

	return domain.Order{
		ID:           o.ID,
		UserID:       o.UserID,
		CustomerName: o.CustomerName,
		Source:       o.Source,
		Notes:        o.Notes,
		Items:        items,
		PickupDate:   o.PickupDate,
		PickupTime:   o.PickupTime,
		Status:       domain.OrderStatus(o.Status),
		Total:        o.Total,
		Timestamp:    o.Timestamp,
		CompletedAt:  o.CompletedAt,
	}
}

func MapDomainOrderToStore(o domain.Order) store.Order {
	items := make([]store.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, store.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			BasePrice:  it.BasePrice,
			Quantity:   it.Quantity,
			Note:       it.Note,
		})
	}

	return store.Order{
		ID:           o.ID,
		UserID:       o.UserID,
		CustomerName: o.CustomerName,
		Source:       o.Source,
		Notes:        o.Notes,
		Items:        items,
		PickupDate:   o.PickupDate,
		PickupTime:   o.PickupTime,
		Status:       string(o.Status),
		Total:        o.Total,
		Timestamp:    o.Timestamp,
		CompletedAt:  o.CompletedAt,
	}
}

func MapDomainOrderToApi(o domain.Order) api.Order {
	items := make([]api.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, api.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			BasePrice:  it.BasePrice,
			Quantity:   it.Quantity,
			Note:       it.Note,
		})
	}

	return api.Order{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Source:       o.Source,
		Notes:        o.Notes,
		Items:        items,
		PickupDate:   o.PickupDate,
		PickupTime:   o.PickupTime,
		Status:       string(o.Status),
		Total:        o.Total,
		Timestamp:    o.Timestamp,
		CompletedAt:  o.CompletedAt,
	}
}

func MapApiOrderItemsToDomain(items []api.OrderItem) []domain.OrderItem {
	mapped := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		mapped = append(mapped, domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			BasePrice:  it.BasePrice,
			Quantity:   it.Quantity,
			Note:       it.Note,
		})
	}
	return mapped
}
