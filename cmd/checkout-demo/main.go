package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/weblarek/storefront/config"
	"github.com/weblarek/storefront/internal/app"
	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/testutil"
	"github.com/weblarek/storefront/internal/view/console"
	"github.com/weblarek/storefront/pkg/logger"
)

// Демо-сценарий: полный путь покупателя от каталога до подтверждения,
// против поднятого в процессе фейкового сервера магазина.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "checkout-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	shop := testutil.NewFakeShop([]domain.Product{
		testutil.Product("hex-soul", "Бескаркасное кресло", testutil.IntPtr(7500)),
		testutil.Product("mute-cat", "Плитка «Мамалыга»", testutil.IntPtr(1500)),
		testutil.Product("free-gem", "Мягкий плюш", nil), // бесценный товар
	})
	defer shop.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.API.BaseURL = shop.URL()
	cfg.API.CDNURL = shop.URL() + "/content"
	cfg.Storage.Dir = mustTempDir()
	cfg.HTTP.GinMode = "release"

	viewLog, cleanupViewLog, err := logger.NewZapLogger(false)
	if err != nil {
		return err
	}
	defer func() { _ = cleanupViewLog() }()

	views := console.NewViews(viewLog)

	a, cleanup, err := app.Bootstrap(ctx, &cfg, app.Views{
		ProductList: views.ProductList,
		Preview:     views.Preview,
		Cart:        views.Cart,
		OrderForm:   views.OrderForm,
		Contacts:    views.Contacts,
		Success:     views.Success,
		Modal:       views.Modal,
	})
	if err != nil {
		return err
	}
	defer cleanup()

	// Трассировка всех событий через wildcard-подписку.
	a.Bus.Subscribe(events.Any, func(e events.Event) {
		fmt.Printf("event: %s\n", e.EventName())
	})

	// 1. Каталог.
	if err := a.ProductPresenter.Load(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	products := a.Catalog.Products()
	first := products[0]
	second := products[1]

	// 2. Превью и добавление в корзину (модальное окно закроется само).
	a.Bus.Publish(events.CardSelected{Product: first})
	a.Bus.Publish(events.CardAddToCart{Product: first})
	a.Bus.Publish(events.CardSelected{Product: second})
	a.Bus.Publish(events.CardAddToCart{Product: second})

	// 3. Корзина и оформление.
	a.Bus.Publish(events.CartOpened{})
	a.Bus.Publish(events.OrderFormOpened{})
	a.Bus.Publish(events.PaymentSelected{Method: domain.PaymentCard})
	a.Bus.Publish(events.AddressChanged{Value: "Спб, Ваське, Кораблестроителей 19"})
	a.Bus.Publish(events.OrderStepSubmitted{})

	// 4. Контакты и отправка.
	a.Bus.Publish(events.ContactsFieldChanged{Field: domain.FieldEmail, Value: "buyer@example.com"})
	a.Bus.Publish(events.ContactsFieldChanged{Field: domain.FieldPhone, Value: "89990001234"})

	chargedBefore := a.Cart.Snapshot().Total
	a.Bus.Publish(events.ContactsSubmitted{})

	// Отправка выполняется в фоне — дожидаемся очистки корзины.
	if err := waitFor(func() bool { return len(a.Cart.Snapshot().Items) == 0 }, 5*time.Second); err != nil {
		return fmt.Errorf("order was not confirmed: %w", err)
	}

	submitted := shop.Submitted()
	fmt.Printf("submitted orders: %d, charged: %d синапсов\n", len(submitted), chargedBefore)
	fmt.Printf("draft phase: %s, modal open: %v\n", a.Draft.Phase(), a.Modal.IsOpen())
	return nil
}

func waitFor(cond func() bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("condition not met within %s", timeout)
}

func mustTempDir() string {
	dir, err := os.MkdirTemp("", "storefront-demo-*")
	if err != nil {
		panic(err)
	}
	return dir
}
