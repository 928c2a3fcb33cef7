package ports

import (
	"context"

	"github.com/weblarek/storefront/internal/domain"
)

// OrderValidator — финальная проверка собранного payload заказа
// перед отправкой на сервер.
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
