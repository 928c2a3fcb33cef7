package ports

import "github.com/weblarek/storefront/internal/domain"

// ViewHandle — непрозрачная ссылка на отрендеренное представление.
// Ядро передаёт её в модальное окно, не заглядывая внутрь:
// конкретная технология рендеринга — забота реализации view-порта.
type ViewHandle any

// CardState — данные одной карточки каталога вместе с признаком,
// можно ли её сейчас купить (товар не в корзине и имеет цену).
type CardState struct {
	Product domain.Product
	CanBuy  bool
}

// ProductListView — галерея товаров.
type ProductListView interface {
	Render(cards []CardState) ViewHandle
}

// ProductPreviewView — превью товара в модальном окне.
type ProductPreviewView interface {
	Render(product domain.Product, canBuy bool) ViewHandle
}

// CartView — корзина и счётчик товаров в шапке.
type CartView interface {
	Render(snapshot domain.CartSnapshot) ViewHandle
	RenderCounter(count int)
}

// OrderFormView — первый шаг оформления: оплата и адрес.
type OrderFormView interface {
	Render(payment domain.PaymentMethod, address string) ViewHandle
	SetValid(valid bool)
	SetError(message string)
	Reset()
}

// ContactsFormView — второй шаг оформления: email и телефон.
type ContactsFormView interface {
	Render(email, phone string) ViewHandle
	SetValid(valid bool)
	SetError(message string)
	Reset()
}

// SuccessView — экран подтверждения с фактически списанной суммой.
type SuccessView interface {
	Render(total int) ViewHandle
}

// ModalView — единственное модальное окно приложения.
type ModalView interface {
	Open()
	Close()
	SetContent(content ViewHandle)
	SetTitle(title string)
}
