// Пакет testutil — общие помощники для тестов и демо-сценария:
// фейковый сервер магазина и фабрики товаров.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/weblarek/storefront/internal/domain"
)

// FakeShop — in-memory сервер с контрактом магазинного API:
// GET /product и POST /order. Поведение /order настраивается полями.
type FakeShop struct {
	Server *httptest.Server

	mu        sync.Mutex
	products  []domain.Product
	submitted []domain.Order

	// OrderStatus — статус ответа /order; 0 означает 200 OK.
	OrderStatus int
	// OrderError — текст для тела {"error": ...} при не-2xx ответе.
	OrderError string
}

// NewFakeShop — поднимает httptest-сервер; закрывать через Close.
func NewFakeShop(products []domain.Product) *FakeShop {
	f := &FakeShop{products: products}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /product", f.handleProducts)
	mux.HandleFunc("POST /order", f.handleOrder)

	f.Server = httptest.NewServer(mux)
	return f
}

func (f *FakeShop) Close() { f.Server.Close() }

// URL — базовый адрес API.
func (f *FakeShop) URL() string { return f.Server.URL }

// Submitted — копия принятых заказов.
func (f *FakeShop) Submitted() []domain.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Order(nil), f.submitted...)
}

func (f *FakeShop) handleProducts(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	items := append([]domain.Product(nil), f.products...)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"total": len(items),
		"items": items,
	})
}

func (f *FakeShop) handleOrder(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	status := f.OrderStatus
	errText := f.OrderError
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if status != 0 && (status < 200 || status > 299) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": errText})
		return
	}

	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "malformed order"})
		return
	}

	f.mu.Lock()
	f.submitted = append(f.submitted, order)
	n := len(f.submitted)
	f.mu.Unlock()

	_ = json.NewEncoder(w).Encode(domain.OrderResult{
		ID:    orderID(n),
		Total: order.Total,
	})
}

// SetOrderFailure — следующие POST /order отвечают данным статусом.
func (f *FakeShop) SetOrderFailure(status int, errText string) {
	f.mu.Lock()
	f.OrderStatus = status
	f.OrderError = errText
	f.mu.Unlock()
}

// SetOrderOK — вернуть /order в успешный режим.
func (f *FakeShop) SetOrderOK() { f.SetOrderFailure(0, "") }

func orderID(n int) string {
	return fmt.Sprintf("order-%d", n)
}

// IntPtr — указатель на цену для литералов товаров.
func IntPtr(v int) *int { return &v }

// Product — фабрика товара для тестов.
func Product(id, title string, price *int) domain.Product {
	return domain.Product{
		ID:          id,
		Title:       title,
		Description: "описание " + title,
		Category:    "другое",
		Price:       price,
		Image:       "/images/" + id + ".svg",
	}
}
