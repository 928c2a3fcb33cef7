package validate

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// validOrderJSON — минимальный валидный payload заказа.
func validOrderJSON() string {
	return `{"payment":"card","email":"user@example.com","phone":"+7 999 000 12 34","address":"Москва, Тверская 1","total":150,"items":["p1","p2"]}`
}

func TestOrderFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	order, err := OrderFromJSON(ctx, validator, []byte(validOrderJSON()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Total != 150 || len(order.Items) != 2 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := `{"unknown":"x",` + validOrderJSON()[1:]
	_, err := OrderFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestOrderFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := validOrderJSON() + "{}"
	_, err := OrderFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestOrderFromJSON_InvalidPayload(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := `{"payment":"bitcoin","email":"user@example.com","phone":"+7 999 000 12 34","address":"Москва, Тверская 1","total":150,"items":["p1"]}`
	_, err := OrderFromJSON(ctx, validator, []byte(raw))
	if !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got: %v", err)
	}
}
