// Пакет app — сборка приложения: сторы, презентеры, шина, сервисный HTTP.
package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weblarek/storefront/config"
	"github.com/weblarek/storefront/internal/api"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/internal/presenter"
	"github.com/weblarek/storefront/internal/storage"
	"github.com/weblarek/storefront/internal/store"
	rest "github.com/weblarek/storefront/internal/transport/http"
	"github.com/weblarek/storefront/pkg/logger"
	"github.com/weblarek/storefront/pkg/metrics"
	"github.com/weblarek/storefront/pkg/telemetry"
	"github.com/weblarek/storefront/pkg/validate"
)

// Views — внешние view-порты, которыми приложение рендерит состояние.
// Отсутствие любого порта — ошибка программиста и фатально на старте.
type Views struct {
	ProductList ports.ProductListView
	Preview     ports.ProductPreviewView
	Cart        ports.CartView
	OrderForm   ports.OrderFormView
	Contacts    ports.ContactsFormView
	Success     ports.SuccessView
	Modal       ports.ModalView
}

func (v Views) check() error {
	if v.ProductList == nil || v.Preview == nil || v.Cart == nil ||
		v.OrderForm == nil || v.Contacts == nil || v.Success == nil || v.Modal == nil {
		return errors.New("app: all view ports must be provided")
	}
	return nil
}

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger ports.Logger
	Bus    *events.Bus

	Catalog *store.Catalog
	Cart    *store.Cart
	Draft   *store.OrderDraft
	Modal   *store.Modal

	ProductPresenter  *presenter.Product
	CartPresenter     *presenter.Cart
	OrderPresenter    *presenter.Order
	ContactsPresenter *presenter.Contacts
	ModalPresenter    *presenter.Modal

	HTTPServer      *http.Server
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию
// очистки и ошибку. Порядок сборки: инфраструктура → сторы → презентеры.
func Bootstrap(ctx context.Context, cfg *config.Config, views Views) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	if err := views.check(); err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Персистентное хранилище корзины.
	kv, err := storage.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Шина и сторы. Корзина при создании восстанавливает снапшот.
	bus := events.NewBus(logg)
	catalog := store.NewCatalog(bus)
	cart := store.NewCart(bus, kv, logg)
	draft := store.NewOrderDraft(bus)
	modal := store.NewModal(bus)

	// API магазина и валидатор payload'а.
	shop := api.NewClient(cfg.API.BaseURL, cfg.API.CDNURL, cfg.API.Timeout)
	orderValidator := validate.NewOrderValidator()

	// Презентеры подписываются на шину в конструкторах.
	productP := presenter.NewProduct(bus, catalog, cart, modal, shop, views.ProductList, views.Preview, logg)
	cartP := presenter.NewCart(bus, cart, modal, views.Cart)
	orderP := presenter.NewOrder(bus, draft, modal, views.OrderForm, views.Contacts)
	contactsP := presenter.NewContacts(ctx, bus, draft, cart, modal, shop, orderValidator,
		views.Contacts, views.OrderForm, views.Success, logg)
	modalP := presenter.NewModal(bus, modal, views.Modal)

	cartP.Init()

	// Сервисный HTTP-интерфейс.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(catalog, cart, modal, bus, logg)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:            logg,
		Bus:               bus,
		Catalog:           catalog,
		Cart:              cart,
		Draft:             draft,
		Modal:             modal,
		ProductPresenter:  productP,
		CartPresenter:     cartP,
		OrderPresenter:    orderP,
		ContactsPresenter: contactsP,
		ModalPresenter:    modalP,
		HTTPServer:        httpSrv,
		gracefulTimeout:   cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — загружает каталог, запускает HTTP-сервер и ждёт отмены контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Первичная загрузка каталога; сеть может быть недоступна —
	// это не фатально, ошибка уже показана пользователю через стор.
	go func() {
		if err := a.ProductPresenter.Load(ctx); err != nil {
			a.Logger.Warnf(ctx, "initial catalog load failed: %v", err)
		}
	}()

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "storefront stopped")
	return nil
}
