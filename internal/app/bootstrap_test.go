package app_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/weblarek/storefront/internal/app"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports/mocks"
	"github.com/weblarek/storefront/internal/presenter"
	"github.com/weblarek/storefront/internal/store"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type memKV struct{ data map[string][]byte }

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (m *memKV) Save(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}
func (m *memKV) Load(key string) ([]byte, bool, error) { v, ok := m.data[key]; return v, ok, nil }
func (m *memKV) Remove(key string) error               { delete(m.data, key); return nil }

func TestAppRun_GracefulShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)

	bus := events.NewBus(nopLogger{})
	catalog := store.NewCatalog(bus)
	cart := store.NewCart(bus, newMemKV(), nopLogger{})
	modal := store.NewModal(bus)

	// первичная загрузка каталога падает — это не должно валить Run
	shop := mocks.NewMockCatalogProvider(ctrl)
	shop.EXPECT().GetProducts(gomock.Any()).Return(nil, errors.New("shop is down")).AnyTimes()

	listView := mocks.NewMockProductListView(ctrl)
	listView.EXPECT().Render(gomock.Any()).Return(nil).AnyTimes()
	previewView := mocks.NewMockProductPreviewView(ctrl)

	productP := presenter.NewProduct(bus, catalog, cart, modal, shop, listView, previewView, nopLogger{})

	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	a := &app.App{
		Logger:           nopLogger{},
		Bus:              bus,
		Catalog:          catalog,
		Cart:             cart,
		Modal:            modal,
		ProductPresenter: productP,
		HTTPServer:       srv,
	}

	// запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if catalog.Err() == "" {
		t.Fatal("failed catalog load must leave a user-facing error on the store")
	}
}
