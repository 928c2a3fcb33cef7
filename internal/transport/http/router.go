// Пакет rest — сервисный HTTP-интерфейс витрины: инспекция состояния
// сторов, метрики и intent-эндпоинты, публикующие события на шину.
// Интерфейс отдаёт только JSON-снапшоты, никакой разметки.
package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/weblarek/storefront/pkg/httpx"
)

// NewRouter — маршруты сервисного интерфейса. otelServiceName != "" —
// включить otelgin-трейсинг.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/catalog", h.listCatalog)
	r.GET("/catalog/:id", h.getProduct)
	r.GET("/cart", h.getCart)
	r.GET("/modal", h.getModal)

	r.POST("/cart/items/:id", h.addCartItem)
	r.DELETE("/cart/items/:id", h.removeCartItem)
	r.POST("/order/open", h.openOrderForm)

	return r
}
