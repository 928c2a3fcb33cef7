package presenter

import (
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/internal/store"
)

// Modal — единственный источник правды о видимости модального окна:
// view подписан на одно событие modal:changed, а не на пары open/close.
type Modal struct {
	modal *store.Modal
	view  ports.ModalView
}

func NewModal(bus *events.Bus, modal *store.Modal, view ports.ModalView) *Modal {
	p := &Modal{modal: modal, view: view}

	events.On(bus, func(e events.ModalChanged) {
		if !e.IsOpen {
			p.view.Close()
			return
		}
		p.view.Open()
		if e.Content != nil {
			p.view.SetContent(e.Content)
		}
		if e.Title != "" {
			p.view.SetTitle(e.Title)
		}
	})

	events.On(bus, func(events.ModalCloseRequested) {
		p.modal.Close()
	})

	return p
}
