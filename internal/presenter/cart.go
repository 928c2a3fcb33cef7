package presenter

import (
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/internal/store"
)

const titleCart = "Корзина"

// Cart — корзина: открытие в модальном окне, перерисовка списка
// и счётчика в шапке, удаление позиций.
type Cart struct {
	cart  *store.Cart
	modal *store.Modal
	view  ports.CartView
}

func NewCart(bus *events.Bus, cart *store.Cart, modal *store.Modal, view ports.CartView) *Cart {
	p := &Cart{cart: cart, modal: modal, view: view}

	events.On(bus, func(events.CartOpened) {
		p.modal.Open(p.view.Render(p.cart.Snapshot()), titleCart)
	})
	events.On(bus, func(e events.CartChanged) {
		p.view.Render(e.Snapshot)
		p.view.RenderCounter(len(e.Snapshot.Items))
	})
	events.On(bus, func(e events.CartItemRemoved) {
		p.cart.Remove(e.ProductID)
	})

	return p
}

// Init — первичная отрисовка (важно для корзины, восстановленной
// из сохранённого снапшота до подписки презентера).
func (p *Cart) Init() {
	snap := p.cart.Snapshot()
	p.view.Render(snap)
	p.view.RenderCounter(len(snap.Items))
}
