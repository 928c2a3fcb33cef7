// Пакет presenter — координаторы между шиной, сторами и view-портами.
// Презентеры не хранят доменного состояния: переводят намерения
// пользователя в мутации сторов, а события сторов — в вызовы view.
package presenter

import (
	"context"
	"sync/atomic"

	"github.com/weblarek/storefront/internal/api"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/internal/store"
)

// Тексты ошибок загрузки каталога по классам ошибок API.
const (
	msgCatalogNetwork = "Ошибка сети. Проверьте подключение к интернету"
	msgCatalogServer  = "Ошибка сервера. Попробуйте позже"
	msgCatalogGeneric = "Не удалось загрузить каталог"
)

// Product — галерея и превью товара.
type Product struct {
	catalog *store.Catalog
	cart    *store.Cart
	modal   *store.Modal
	shop    ports.CatalogProvider

	listView    ports.ProductListView
	previewView ports.ProductPreviewView

	log     ports.Logger
	loadGen atomic.Uint64
}

func NewProduct(
	bus *events.Bus,
	catalog *store.Catalog,
	cart *store.Cart,
	modal *store.Modal,
	shop ports.CatalogProvider,
	listView ports.ProductListView,
	previewView ports.ProductPreviewView,
	log ports.Logger,
) *Product {
	p := &Product{
		catalog:     catalog,
		cart:        cart,
		modal:       modal,
		shop:        shop,
		listView:    listView,
		previewView: previewView,
		log:         log,
	}

	events.On(bus, func(events.CatalogChanged) { p.renderGallery() })
	events.On(bus, func(events.CartChanged) { p.renderGallery() })
	events.On(bus, func(e events.CardSelected) { p.openPreview(e) })
	events.On(bus, func(e events.CardAddToCart) { p.addToCart(e) })

	return p
}

// Load — загрузка каталога. Устаревший ответ (стартовала более поздняя
// загрузка) отбрасывается и не попадает в стор.
func (p *Product) Load(ctx context.Context) error {
	gen := p.loadGen.Add(1)

	products, err := p.shop.GetProducts(ctx)
	if p.loadGen.Load() != gen {
		p.log.Warnf(ctx, "catalog load: stale response dropped gen=%d", gen)
		return nil
	}
	if err != nil {
		p.log.Errorf(ctx, "catalog load failed: %v", err)
		p.catalog.SetError(catalogErrorMessage(err))
		return err
	}

	p.catalog.SetProducts(products)
	p.log.Infof(ctx, "catalog loaded products=%d", len(products))
	return nil
}

func (p *Product) renderGallery() {
	products := p.catalog.Products()
	cards := make([]ports.CardState, 0, len(products))
	for _, prod := range products {
		cards = append(cards, ports.CardState{
			Product: prod,
			CanBuy:  prod.ForSale() && !p.cart.Contains(prod.ID),
		})
	}
	p.listView.Render(cards)
}

// openPreview — превью товара; покупка недоступна для «бесценных»
// товаров и товаров, уже лежащих в корзине.
func (p *Product) openPreview(e events.CardSelected) {
	product := e.Product
	if fromCatalog, ok := p.catalog.ByID(product.ID); ok {
		product = fromCatalog
	}

	canBuy := product.ForSale() && !p.cart.Contains(product.ID)
	p.modal.Open(p.previewView.Render(product, canBuy), product.Title)
}

// addToCart — добавление из превью; модальное окно закрывается сразу.
func (p *Product) addToCart(e events.CardAddToCart) {
	if !e.Product.ForSale() {
		p.log.Warnf(context.Background(), "add to cart rejected: product %s is not for sale", e.Product.ID)
		return
	}
	p.cart.Add(e.Product)
	p.modal.Close()
}

func catalogErrorMessage(err error) string {
	switch {
	case api.IsKind(err, api.KindNetwork):
		return msgCatalogNetwork
	case api.IsKind(err, api.KindServer):
		return msgCatalogServer
	default:
		return msgCatalogGeneric
	}
}
