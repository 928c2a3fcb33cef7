package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports"
	"github.com/weblarek/storefront/internal/store"
	"github.com/weblarek/storefront/pkg/httpx"
)

// Handler — обработчики сервисного интерфейса. Чтение идёт напрямую
// из сторов; мутации — только через intent-события на шине, тем же
// путём, что и действия пользователя в UI.
type Handler struct {
	catalog *store.Catalog
	cart    *store.Cart
	modal   *store.Modal
	bus     *events.Bus
	log     ports.Logger
}

func NewHandler(catalog *store.Catalog, cart *store.Cart, modal *store.Modal, bus *events.Bus, log ports.Logger) *Handler {
	return &Handler{catalog: catalog, cart: cart, modal: modal, bus: bus, log: log}
}

func (h *Handler) listCatalog(c *gin.Context) {
	products := h.catalog.Products()

	limit, offset := httpx.ParseLimitOffset(c, 20, 100)
	if offset > len(products) {
		offset = len(products)
	}
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(products),
		"items": products[offset:end],
		"error": h.catalog.Err(),
	})
}

func (h *Handler) getProduct(c *gin.Context) {
	id := c.Param("id")
	product, ok := h.catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) getModal(c *gin.Context) {
	st := h.modal.State()
	resp := gin.H{"isOpen": st.IsOpen}
	if st.IsOpen {
		resp["title"] = st.Title
		resp["content"] = fmt.Sprintf("%v", st.Content)
	}
	c.JSON(http.StatusOK, resp)
}

// addCartItem — публикует то же намерение, что клик «В корзину» в превью.
func (h *Handler) addCartItem(c *gin.Context) {
	id := c.Param("id")
	product, ok := h.catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if !product.ForSale() {
		c.JSON(http.StatusConflict, gin.H{"error": "product is not for sale"})
		return
	}

	h.bus.Publish(events.CardAddToCart{Product: product})
	c.JSON(http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) removeCartItem(c *gin.Context) {
	h.bus.Publish(events.CartItemRemoved{ProductID: c.Param("id")})
	c.JSON(http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) openOrderForm(c *gin.Context) {
	h.bus.Publish(events.OrderFormOpened{})
	st := h.modal.State()
	c.JSON(http.StatusOK, gin.H{"isOpen": st.IsOpen, "title": st.Title})
}
