package ports

import (
	"context"

	"github.com/weblarek/storefront/internal/domain"
)

// CatalogProvider — загрузка списка товаров.
// Реализация обязана вернуть товары с уже абсолютными URL картинок.
type CatalogProvider interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
}

// OrderSubmitter — оформление заказа.
// Любой не-2xx ответ возвращается типизированной ошибкой (*api.Error),
// а не generic-исключением.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, order domain.Order) (domain.OrderResult, error)
}
