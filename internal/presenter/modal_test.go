package presenter_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports/mocks"
	"github.com/weblarek/storefront/internal/presenter"
	"github.com/weblarek/storefront/internal/store"
)

func TestModal_StateMirroredToView(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := events.NewBus(noopLogger{})
	modal := store.NewModal(bus)

	view := mocks.NewMockModalView(ctrl)
	presenter.NewModal(bus, modal, view)

	gomock.InOrder(
		view.EXPECT().Open(),
		view.EXPECT().SetContent("корзина"),
		view.EXPECT().SetTitle("Корзина"),
		view.EXPECT().Close(),
	)

	modal.Open("корзина", "Корзина")
	bus.Publish(events.ModalCloseRequested{})
}

func TestModal_CloseRequestWhenClosedIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := events.NewBus(noopLogger{})
	modal := store.NewModal(bus)

	view := mocks.NewMockModalView(ctrl)
	view.EXPECT().Close().Times(0)
	presenter.NewModal(bus, modal, view)

	bus.Publish(events.ModalCloseRequested{})
}
