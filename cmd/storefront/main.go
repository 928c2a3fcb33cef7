package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/weblarek/storefront/config"
	"github.com/weblarek/storefront/internal/app"
	"github.com/weblarek/storefront/internal/view/console"
	"github.com/weblarek/storefront/pkg/logger"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Логгер для console-представлений; у приложения свой экземпляр.
	viewLog, cleanupViewLog, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		panic(err)
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
		panic(err)
	}
	defer cleanup()

	// graceful shutdown по сигналу
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()
	}()

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "run failed: %v", err)
	}
}
