package adapters

import (
	"github.com/mltpascual/ordertaker/pkg/models/api"
	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/models/store"
)

func MapStoreMenuItemToDomain(m store.MenuItem) domain.MenuItem {
	return domain.MenuItem{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		BasePrice: m.BasePrice,
		Category:  m.Category,
		Available: m.Available,
	}
}

func MapDomainMenuItemToStore(m domain.MenuItem) store.MenuItem {
	return store.MenuItem{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		BasePrice: m.BasePrice,
		Category:  m.Category,
		Available: m.Available,
	}
}

func MapDomainMenuItemToApi(m domain.MenuItem) api.MenuItem {
	return api.MenuItem{
		ID:        m.ID,
		Name:      m.Name,
		BasePrice: m.BasePrice,
		Category:  m.Category,
		Available: m.Available,
	}
}
