package presenter

import (
	"context"

	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/internal/store"
	"github.com/weblarek/storefront/pkg/metrics"
)

const (
	titleSuccess     = "Заказ оформлен"
	msgSubmitFailed  = "Произошла ошибка при оформлении заказа"
	submitStatusOK   = "ok"
	submitStatusFail = "failed"
)

// Contacts — второй шаг оформления и отправка заказа.
type Contacts struct {
	draft *store.OrderDraft
	cart  *store.Cart
	modal *store.Modal

	shop      ports.OrderSubmitter
	validator ports.OrderValidator

	contactsView ports.ContactsFormView
	orderView    ports.OrderFormView
	successView  ports.SuccessView

	log ports.Logger
	ctx context.Context
}

// NewContacts — ctx живёт столько же, сколько приложение: в нём
// выполняются фоновые отправки заказа.
func NewContacts(
	ctx context.Context,
	bus *events.Bus,
	draft *store.OrderDraft,
	cart *store.Cart,
	modal *store.Modal,
	shop ports.OrderSubmitter,
	validator ports.OrderValidator,
	contactsView ports.ContactsFormView,
	orderView ports.OrderFormView,
	successView ports.SuccessView,
	log ports.Logger,
) *Contacts {
	p := &Contacts{
		draft:        draft,
		cart:         cart,
		modal:        modal,
		shop:         shop,
		validator:    validator,
		contactsView: contactsView,
		orderView:    orderView,
		successView:  successView,
		log:          log,
		ctx:          ctx,
	}

	events.On(bus, func(e events.ContactsFieldChanged) { p.applyInput(e) })

	events.On(bus, func(e events.DraftFieldChanged) {
		if e.Field != domain.FieldEmail && e.Field != domain.FieldPhone {
			return
		}
		errs := p.draft.ValidateContactsStep()
		p.contactsView.SetValid(errs.Valid())
	})

	events.On(bus, func(e events.DraftErrorsChanged) {
		if e.Step != store.StepContacts {
			return
		}
		p.contactsView.SetError(e.Errors.First())
	})

	// Отправка — единственное место, где ядро ждёт сеть; выполняется
	// в фоне, чтобы пользователь мог продолжать работать с UI.
	events.On(bus, func(events.ContactsSubmitted) {
		go p.Submit(p.ctx)
	})

	return p
}

func (p *Contacts) applyInput(e events.ContactsFieldChanged) {
	switch e.Field {
	case domain.FieldEmail:
		p.draft.SetEmail(e.Value)
	case domain.FieldPhone:
		p.draft.SetPhone(e.Value)
	}
}

// Submit — валидация, сборка payload'а из ТЕКУЩЕГО снапшота корзины
// и отправка. При любой невалидности шагов сеть не вызывается и
// состояние не меняется.
func (p *Contacts) Submit(ctx context.Context) {
	if !p.draft.ValidateContactsStep().Valid() {
		p.contactsView.SetValid(false)
		return
	}
	if !p.draft.ValidateOrderStep().Valid() {
		p.contactsView.SetValid(false)
		return
	}

	snap := p.cart.Snapshot()
	order := p.draft.BuildOrder(snap)

	// Финальный рубеж: собранный payload обязан быть валидным,
	// расхождение со степовой валидацией — ошибка программиста.
	if err := p.validator.Validate(ctx, &order); err != nil {
		p.log.Errorf(ctx, "order payload rejected by validator: %v", err)
		p.contactsView.SetError(msgSubmitFailed)
		return
	}

	token := p.draft.BeginSubmit()

	result, err := p.shop.SubmitOrder(ctx, order)
	if err != nil {
		// Fail вернёт false, если отправка уже неактуальна
		// (например, черновик сброшен отменой во время запроса).
		if !p.draft.Fail(token) {
			p.log.Warnf(ctx, "stale order submission result ignored: %v", err)
			return
		}
		metrics.OrdersSubmitted.WithLabelValues(submitStatusFail).Inc()
		p.log.Errorf(ctx, "order submission failed: %v", err)
		p.contactsView.SetError(msgSubmitFailed)
		return
	}

	if !p.draft.Confirm(token) {
		p.log.Warnf(ctx, "stale order submission success ignored order_id=%s", result.ID)
		return
	}

	metrics.OrdersSubmitted.WithLabelValues(submitStatusOK).Inc()
	p.log.Infof(ctx, "order submitted id=%s total=%d items=%d", result.ID, snap.Total, len(snap.Items))

	// Подтверждение показывает сумму, списанную в момент отправки, —
	// корзина очищается уже после того, как снапшот зафиксирован.
	charged := snap.Total
	p.cart.Clear()
	p.draft.Reset()
	p.contactsView.Reset()
	p.orderView.Reset()
	p.modal.Open(p.successView.Render(charged), titleSuccess)
}
