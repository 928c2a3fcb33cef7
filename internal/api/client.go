// Пакет api — HTTP-клиент магазина: загрузка каталога и оформление заказа.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/weblarek/storefront/internal/domain"
	"github.com/weblarek/storefront/pkg/metrics"
)

const (
	productsPath = "/product"
	ordersPath   = "/order"

	opGetProducts = "get_products"
	opSubmitOrder = "submit_order"
)

// listResponse — конверт списковых ответов сервера.
type listResponse struct {
	Total int              `json:"total"`
	Items []domain.Product `json:"items"`
}

// errorResponse — тело ответа с ошибкой: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

// Client — реализация ports.CatalogProvider и ports.OrderSubmitter.
type Client struct {
	baseURL string
	cdnURL  string
	http    *http.Client
	tracer  trace.Tracer
}

// NewClient — baseURL без завершающего слэша; timeout — на весь запрос.
func NewClient(baseURL, cdnURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cdnURL:  strings.TrimRight(cdnURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tracer:  otel.Tracer("shop-api"),
	}
}

// GetProducts — список товаров с абсолютизированными URL картинок.
func (c *Client) GetProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, span := c.tracer.Start(ctx, "shop.GetProducts")
	defer span.End()

	var list listResponse
	if err := c.do(ctx, http.MethodGet, productsPath, nil, &list, opGetProducts); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(list.Items))
	for _, p := range list.Items {
		p.Image = c.absolutize(p.Image)
		products = append(products, p)
	}
	span.SetAttributes(attribute.Int("products.count", len(products)))
	return products, nil
}

// SubmitOrder — оформление заказа.
func (c *Client) SubmitOrder(ctx context.Context, order domain.Order) (domain.OrderResult, error) {
	ctx, span := c.tracer.Start(ctx, "shop.SubmitOrder")
	defer span.End()

	var result domain.OrderResult
	if err := c.do(ctx, http.MethodPost, ordersPath, order, &result, opSubmitOrder); err != nil {
		return domain.OrderResult{}, err
	}
	return result, nil
}

// do — общий запрос: JSON туда и обратно, классификация ошибок, метрики.
func (c *Client) do(ctx context.Context, method, path string, body, dest any, op string) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api %s: marshal: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api %s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.APIRequests.WithLabelValues(op, string(KindNetwork)).Inc()
		return &Error{Kind: KindNetwork, Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.APIRequests.WithLabelValues(op, string(KindNetwork)).Inc()
		return &Error{Kind: KindNetwork, Op: op, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := kindForStatus(resp.StatusCode)
		metrics.APIRequests.WithLabelValues(op, string(kind)).Inc()
		return &Error{
			Kind:    kind,
			Status:  resp.StatusCode,
			Op:      op,
			Message: errorMessage(raw, resp.Status),
		}
	}

	if dest != nil {
		if err := json.Unmarshal(raw, dest); err != nil {
			metrics.APIRequests.WithLabelValues(op, string(KindServer)).Inc()
			return &Error{
				Kind:    KindServer,
				Status:  resp.StatusCode,
				Op:      op,
				Message: fmt.Sprintf("malformed response: %v", err),
			}
		}
	}

	metrics.APIRequests.WithLabelValues(op, "ok").Inc()
	return nil
}

// errorMessage — текст ошибки из тела {"error": ...}, иначе HTTP-статус.
func errorMessage(raw []byte, fallback string) string {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Error != "" {
		return er.Error
	}
	return fallback
}

// absolutize — относительные пути картинок дополняются CDN-префиксом.
func (c *Client) absolutize(image string) string {
	if image == "" || strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	if !strings.HasPrefix(image, "/") {
		image = "/" + image
	}
	return c.cdnURL + image
}
