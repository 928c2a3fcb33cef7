package presenter

import (
	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/internal/store"
)

const (
	titleOrder    = "Оформление заказа"
	titleContacts = "Контакты"
)

// Order — первый шаг оформления: способ оплаты и адрес.
// Кнопка сабмита отражает результат валидации реактивно, при каждом
// изменении поля, а не только в момент сабмита.
type Order struct {
	draft *store.OrderDraft
	modal *store.Modal

	orderView    ports.OrderFormView
	contactsView ports.ContactsFormView
}

func NewOrder(
	bus *events.Bus,
	draft *store.OrderDraft,
	modal *store.Modal,
	orderView ports.OrderFormView,
	contactsView ports.ContactsFormView,
) *Order {
	p := &Order{
		draft:        draft,
		modal:        modal,
		orderView:    orderView,
		contactsView: contactsView,
	}

	// Черновик намеренно не сбрасывается при открытии: возврат назад
	// по шагам сохраняет введённое.
	events.On(bus, func(events.OrderFormOpened) {
		p.modal.Open(p.orderView.Render(p.draft.Payment(), p.draft.Address()), titleOrder)
	})

	events.On(bus, func(e events.PaymentSelected) { p.draft.SetPayment(e.Method) })
	events.On(bus, func(e events.AddressChanged) { p.draft.SetAddress(e.Value) })

	events.On(bus, func(e events.DraftFieldChanged) {
		if e.Field != domain.FieldPayment && e.Field != domain.FieldAddress {
			return
		}
		errs := p.draft.ValidateOrderStep()
		p.orderView.SetValid(errs.Valid())
	})

	events.On(bus, func(e events.DraftErrorsChanged) {
		if e.Step != store.StepOrder {
			return
		}
		p.orderView.SetError(e.Errors.First())
	})

	// Валидный сабмит первого шага меняет содержимое открытого окна
	// на форму контактов — без закрытия и переоткрытия.
	events.On(bus, func(events.OrderStepSubmitted) {
		if !p.draft.ValidateOrderStep().Valid() {
			p.orderView.SetValid(false)
			return
		}
		p.modal.Open(p.contactsView.Render(p.draft.Email(), p.draft.Phone()), titleContacts)
	})

	// Явная отмена оформления: черновик и формы в исходное состояние.
	events.On(bus, func(events.OrderCancelled) {
		p.draft.Reset()
		p.orderView.Reset()
		p.contactsView.Reset()
		p.modal.Close()
	})

	return p
}
