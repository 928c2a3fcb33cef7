// Пакет store — владельцы состояния приложения: корзина, каталог,
// черновик заказа и модальное окно. Каждый стор монопольно владеет
// своим срезом состояния и публикует события об изменениях.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/pkg/metrics"
)

// cartStorageKey — ключ снапшота корзины в персистентном хранилище.
const cartStorageKey = "cartProducts"

// Cart — стор корзины. Инвариант: нет двух позиций с одним id.
// После каждой мутации состояние сохраняется в KeyValueStore;
// ошибки записи логируются и не прерывают работу.
type Cart struct {
	mu      sync.Mutex
	items   []domain.Product
	bus     *events.Bus
	storage ports.KeyValueStore
	log     ports.Logger
}

// NewCart — создаёт корзину и пытается восстановить сохранённый снапшот.
// Битые данные не фатальны: предупреждение в лог и пустая корзина.
func NewCart(bus *events.Bus, storage ports.KeyValueStore, log ports.Logger) *Cart {
	c := &Cart{bus: bus, storage: storage, log: log}
	c.rehydrate()
	return c
}

func (c *Cart) rehydrate() {
	ctx := context.Background()

	raw, ok, err := c.storage.Load(cartStorageKey)
	if err != nil {
		c.log.Warnf(ctx, "cart rehydrate: load failed: %v", err)
		return
	}
	if !ok {
		return
	}

	var items []domain.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warnf(ctx, "cart rehydrate: corrupt snapshot, starting empty: %v", err)
		return
	}

	c.items = items
	c.updateGauges()
	c.bus.Publish(events.CartChanged{Snapshot: c.snapshotLocked()})
}

// Add — идемпотентная вставка: повторное добавление того же товара — no-op.
// Защита от гонки двойного клика по кнопке «В корзину».
func (c *Cart) Add(product domain.Product) {
	c.mu.Lock()
	if c.containsLocked(product.ID) {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items, product)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.persist()
	c.updateGauges()
	c.bus.Publish(events.CartChanged{Snapshot: snap})
}

// Remove — убрать товар; отсутствующий id — no-op без события.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	idx := -1
	for i, it := range c.items {
		if it.ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.persist()
	c.updateGauges()
	c.bus.Publish(events.CartChanged{Snapshot: snap})
}

// Clear — опустошить корзину и удалить сохранённый снапшот.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if err := c.storage.Remove(cartStorageKey); err != nil {
		c.log.Warnf(context.Background(), "cart clear: remove snapshot failed: %v", err)
	}
	c.updateGauges()
	c.bus.Publish(events.CartChanged{Snapshot: snap})
}

// Contains — товар уже в корзине.
func (c *Cart) Contains(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.containsLocked(productID)
}

// Snapshot — текущее состояние корзины. Items — защитная копия:
// вызывающий код не может изменить внутренности стора.
func (c *Cart) Snapshot() domain.CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Cart) containsLocked(productID string) bool {
	for _, it := range c.items {
		if it.ID == productID {
			return true
		}
	}
	return false
}

func (c *Cart) snapshotLocked() domain.CartSnapshot {
	items := append([]domain.Product(nil), c.items...)
	return domain.CartSnapshot{Items: items, Total: domain.SumTotal(items)}
}

// persist — сохранить позиции; сбой хранилища не фатален,
// авторитетным остаётся состояние в памяти.
func (c *Cart) persist() {
	c.mu.Lock()
	items := append([]domain.Product(nil), c.items...)
	c.mu.Unlock()

	raw, err := json.Marshal(items)
	if err != nil {
		c.log.Warnf(context.Background(), "cart persist: marshal failed: %v", err)
		return
	}
	if err := c.storage.Save(cartStorageKey, raw); err != nil {
		c.log.Warnf(context.Background(), "cart persist: save failed: %v", err)
	}
}

func (c *Cart) updateGauges() {
	snap := c.Snapshot()
	metrics.CartItems.Set(float64(len(snap.Items)))
	metrics.CartTotal.Set(float64(snap.Total))
}
