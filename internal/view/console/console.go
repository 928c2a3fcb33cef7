// Пакет console — реализация view-портов для бинарников без UI:
// каждая отрисовка превращается в строку лога. Handle — готовая строка
// описания содержимого, её же показывает модальное окно.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/ports"
)

// Views — полный набор console-представлений поверх одного логгера.
type Views struct {
	ProductList ports.ProductListView
	Preview     ports.ProductPreviewView
	Cart        ports.CartView
	OrderForm   ports.OrderFormView
	Contacts    ports.ContactsFormView
	Success     ports.SuccessView
	Modal       ports.ModalView
}

func NewViews(log ports.Logger) *Views {
	return &Views{
		ProductList: &productList{log: log},
		Preview:     &preview{log: log},
		Cart:        &cart{log: log},
		OrderForm:   &orderForm{log: log},
		Contacts:    &contactsForm{log: log},
		Success:     &success{log: log},
		Modal:       &modal{log: log},
	}
}

func price(p *int) string {
	if p == nil {
		return "бесценно"
	}
	return fmt.Sprintf("%d синапсов", *p)
}

type productList struct{ log ports.Logger }

func (v *productList) Render(cards []ports.CardState) ports.ViewHandle {
	titles := make([]string, 0, len(cards))
	for _, c := range cards {
		mark := ""
		if !c.CanBuy {
			mark = " (недоступно)"
		}
		titles = append(titles, c.Product.Title+mark)
	}
	v.log.Infof(context.Background(), "gallery: %d товаров [%s]", len(cards), strings.Join(titles, ", "))
	return fmt.Sprintf("gallery(%d)", len(cards))
}

type preview struct{ log ports.Logger }

func (v *preview) Render(p domain.Product, canBuy bool) ports.ViewHandle {
	v.log.Infof(context.Background(), "preview: %s, %s, canBuy=%v", p.Title, price(p.Price), canBuy)
	return fmt.Sprintf("preview(%s)", p.ID)
}

type cart struct{ log ports.Logger }

func (v *cart) Render(snap domain.CartSnapshot) ports.ViewHandle {
	v.log.Infof(context.Background(), "cart: %d товаров, итого %d синапсов", len(snap.Items), snap.Total)
	return fmt.Sprintf("cart(%d, %d)", len(snap.Items), snap.Total)
}

func (v *cart) RenderCounter(count int) {
	v.log.Infof(context.Background(), "header counter: %d", count)
}

type orderForm struct{ log ports.Logger }

func (v *orderForm) Render(payment domain.PaymentMethod, address string) ports.ViewHandle {
	v.log.Infof(context.Background(), "order form: payment=%q address=%q", payment, address)
	return "orderForm"
}
func (v *orderForm) SetValid(valid bool) {
	v.log.Infof(context.Background(), "order form valid=%v", valid)
}
func (v *orderForm) SetError(message string) {
	if message != "" {
		v.log.Infof(context.Background(), "order form error: %s", message)
	}
}
func (v *orderForm) Reset() {
	v.log.Infof(context.Background(), "order form reset")
}

type contactsForm struct{ log ports.Logger }

func (v *contactsForm) Render(email, phone string) ports.ViewHandle {
	v.log.Infof(context.Background(), "contacts form: email=%q phone=%q", email, phone)
	return "contactsForm"
}
func (v *contactsForm) SetValid(valid bool) {
	v.log.Infof(context.Background(), "contacts form valid=%v", valid)
}
func (v *contactsForm) SetError(message string) {
	if message != "" {
		v.log.Infof(context.Background(), "contacts form error: %s", message)
	}
}
func (v *contactsForm) Reset() {
	v.log.Infof(context.Background(), "contacts form reset")
}

type success struct{ log ports.Logger }

func (v *success) Render(total int) ports.ViewHandle {
	v.log.Infof(context.Background(), "success: списано %d синапсов", total)
	return fmt.Sprintf("success(%d)", total)
}

type modal struct{ log ports.Logger }

func (v *modal) Open() { v.log.Infof(context.Background(), "modal open") }
func (v *modal) Close() {
	v.log.Infof(context.Background(), "modal close")
}
func (v *modal) SetContent(content ports.ViewHandle) {
	v.log.Infof(context.Background(), "modal content: %v", content)
}
func (v *modal) SetTitle(title string) {
	v.log.Infof(context.Background(), "modal title: %s", title)
}
