package validate

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/pkg/phonefmt"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу ports.OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации payload'а.
var ErrInvalidOrder = errors.New("order validation failed")

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// OrderValidator — последний рубеж перед отправкой заказа на сервер:
// проверяет собранный payload целиком, независимо от пошаговой валидации форм.
type OrderValidator struct{}

func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if order.Payment != domain.PaymentCard && order.Payment != domain.PaymentCash {
		return fmt.Errorf("%w: payment должен быть card или cash", ErrInvalidOrder)
	}
	if order.Address == "" {
		return fmt.Errorf("%w: address обязателен", ErrInvalidOrder)
	}
	if order.Email == "" {
		return fmt.Errorf("%w: email обязателен", ErrInvalidOrder)
	}
	if !emailRe.MatchString(order.Email) {
		return fmt.Errorf("%w: email некорректен", ErrInvalidOrder)
	}
	if !phonefmt.Complete(order.Phone) {
		return fmt.Errorf("%w: phone должен содержать 11 цифр", ErrInvalidOrder)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: items не должен быть пустым", ErrInvalidOrder)
	}
	for i, id := range order.Items {
		if id == "" {
			return fmt.Errorf("%w: items[%d] пустой id", ErrInvalidOrder, i)
		}
	}
	if order.Total < 0 {
		return fmt.Errorf("%w: total должен быть неотрицательным", ErrInvalidOrder)
	}
	return nil
}
