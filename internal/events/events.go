// Пакет events — синхронная шина событий приложения.
//
// Набор событий закрыт: каждое событие — структура с известным на этапе
// компиляции payload, реализующая интерфейс Event. Строковые имена нужны
// только для маршрутизации подписок, метрик и логов.
package events

import (
	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/ports"
)

// Name — имя события на шине.
type Name string

// Any — wildcard-подписка: обработчик получает каждое событие.
const Any Name = "*"

// Имена событий. Namespace соответствует источнику:
// card/cart/order/contacts — намерения пользователя из view,
// catalog/draft/modal — изменения состояния сторов.
const (
	NameCardSelected         Name = "card:select"
	NameCardAddToCart        Name = "card:addCart"
	NameCartOpened           Name = "cart:open"
	NameCartItemRemoved      Name = "cart:removeItem"
	NameCartChanged          Name = "cart:changed"
	NameCatalogChanged       Name = "catalog:changed"
	NameCatalogFailed        Name = "catalog:failed"
	NameOrderFormOpened      Name = "order:open"
	NamePaymentSelected      Name = "order:payment"
	NameAddressChanged       Name = "order:address"
	NameOrderStepSubmitted   Name = "order:submit"
	NameOrderCancelled       Name = "order:cancel"
	NameContactsFieldChanged Name = "contacts:input"
	NameContactsSubmitted    Name = "contacts:submit"
	NameDraftFieldChanged    Name = "order:fieldChanged"
	NameDraftErrorsChanged   Name = "order:errors"
	NameModalChanged         Name = "modal:changed"
	NameModalCloseRequested  Name = "modal:close"
)

// Event — единица обмена на шине.
type Event interface {
	EventName() Name
}

// ---- намерения пользователя ----

// CardSelected — пользователь открыл карточку товара.
type CardSelected struct{ Product domain.Product }

// CardAddToCart — пользователь добавляет товар в корзину из превью.
type CardAddToCart struct{ Product domain.Product }

// CartOpened — пользователь открыл корзину.
type CartOpened struct{}

// CartItemRemoved — пользователь убрал товар из корзины.
type CartItemRemoved struct{ ProductID string }

// OrderFormOpened — пользователь перешёл к оформлению заказа.
type OrderFormOpened struct{}

// PaymentSelected — выбран способ оплаты.
type PaymentSelected struct{ Method domain.PaymentMethod }

// AddressChanged — введён адрес доставки.
type AddressChanged struct{ Value string }

// OrderStepSubmitted — сабмит первого шага (оплата + адрес).
type OrderStepSubmitted struct{}

// OrderCancelled — явный отказ от оформления; черновик сбрасывается.
type OrderCancelled struct{}

// ContactsFieldChanged — ввод на втором шаге (email или телефон).
type ContactsFieldChanged struct {
	Field domain.Field
	Value string
}

// ContactsSubmitted — сабмит второго шага, запускает отправку заказа.
type ContactsSubmitted struct{}

// ModalCloseRequested — пользователь закрывает модальное окно.
type ModalCloseRequested struct{}

// ---- изменения состояния ----

// CartChanged — корзина изменилась; несёт свежий снапшот.
type CartChanged struct{ Snapshot domain.CartSnapshot }

// CatalogChanged — загружен список товаров.
type CatalogChanged struct{ Products []domain.Product }

// CatalogFailed — каталог не загрузился; Message готов к показу пользователю.
type CatalogFailed struct{ Message string }

// DraftFieldChanged — изменилось одно поле черновика заказа.
type DraftFieldChanged struct {
	Field domain.Field
	Value string
}

// DraftErrorsChanged — пересчитаны ошибки одного из шагов формы.
type DraftErrorsChanged struct {
	Step   string // "order" | "contacts"
	Errors domain.ValidationErrors
}

// ModalChanged — модальное окно открылось/закрылось/сменило содержимое.
type ModalChanged struct {
	IsOpen  bool
	Content ports.ViewHandle
	Title   string
}

func (CardSelected) EventName() Name         { return NameCardSelected }
func (CardAddToCart) EventName() Name        { return NameCardAddToCart }
func (CartOpened) EventName() Name           { return NameCartOpened }
func (CartItemRemoved) EventName() Name      { return NameCartItemRemoved }
func (CartChanged) EventName() Name          { return NameCartChanged }
func (CatalogChanged) EventName() Name       { return NameCatalogChanged }
func (CatalogFailed) EventName() Name        { return NameCatalogFailed }
func (OrderFormOpened) EventName() Name      { return NameOrderFormOpened }
func (PaymentSelected) EventName() Name      { return NamePaymentSelected }
func (AddressChanged) EventName() Name       { return NameAddressChanged }
func (OrderStepSubmitted) EventName() Name   { return NameOrderStepSubmitted }
func (OrderCancelled) EventName() Name       { return NameOrderCancelled }
func (ContactsFieldChanged) EventName() Name { return NameContactsFieldChanged }
func (ContactsSubmitted) EventName() Name    { return NameContactsSubmitted }
func (DraftFieldChanged) EventName() Name    { return NameDraftFieldChanged }
func (DraftErrorsChanged) EventName() Name   { return NameDraftErrorsChanged }
func (ModalChanged) EventName() Name         { return NameModalChanged }
func (ModalCloseRequested) EventName() Name  { return NameModalCloseRequested }
