package store

import (
	"sync"

	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/events"
)

// Catalog — стор последнего загруженного списка товаров.
// Товары неизменяемы после загрузки; наружу отдаются копии.
type Catalog struct {
	mu       sync.Mutex
	products []domain.Product
	lastErr  string
	bus      *events.Bus
}

func NewCatalog(bus *events.Bus) *Catalog {
	return &Catalog{bus: bus}
}

// SetProducts — заменить список товаров и оповестить подписчиков.
func (c *Catalog) SetProducts(products []domain.Product) {
	c.mu.Lock()
	c.products = append([]domain.Product(nil), products...)
	c.lastErr = ""
	copied := append([]domain.Product(nil), c.products...)
	c.mu.Unlock()

	c.bus.Publish(events.CatalogChanged{Products: copied})
}

// Products — копия списка товаров.
func (c *Catalog) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Product(nil), c.products...)
}

// ByID — найти товар по идентификатору.
func (c *Catalog) ByID(id string) (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// SetError — сохранить готовое к показу сообщение об ошибке загрузки.
func (c *Catalog) SetError(message string) {
	c.mu.Lock()
	c.lastErr = message
	c.mu.Unlock()

	c.bus.Publish(events.CatalogFailed{Message: message})
}

// Err — последнее сообщение об ошибке ("" если загрузка прошла успешно).
func (c *Catalog) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Len — количество товаров в каталоге.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.products)
}
