// Package httpapi exposes the menu and the single cart over JSON HTTP.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menucart/catalog"
	"menucart/logic"
	"menucart/store"
)

type Handler struct {
	menu *catalog.Catalog
	cart *store.Store
	log  *zap.Logger
}

func NewHandler(menu *catalog.Catalog, cart *store.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{menu: menu, cart: cart, log: log}
}

type addItemRequest struct {
	MenuItemID string           `json:"menuItemId"`
	Selections logic.Selections `json:"selections"`
	Quantity   *int             `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type quoteRequest struct {
	Selections logic.Selections `json:"selections"`
	Quantity   *int             `json:"quantity"`
}

// --------------------------------------------------
// Menu
// --------------------------------------------------

func (h *Handler) ListMenu(c *gin.Context) {
	groups := h.menu.Filter(c.Query("q"))
	if groups == nil {
		groups = []catalog.Group{}
	}
	c.JSON(http.StatusOK, gin.H{"data": groups})
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	item, ok := h.menu.Get(c.Param("id"))
	if !ok {
		writeError(c, errMenuItemNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Quote prices a prospective selection without touching the cart.
func (h *Handler) Quote(c *gin.Context) {
	item, ok := h.menu.Get(c.Param("id"))
	if !ok {
		writeError(c, errMenuItemNotFound)
		return
	}

	var req quoteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if err := logic.RequirePositive(quantity, logic.ErrMsgQuantityPositive); err != nil {
		writeError(c, err)
		return
	}
	if err := logic.RequireAtMost(quantity, logic.MaxQuantity, logic.ErrMsgQuantityTooLarge); err != nil {
		writeError(c, err)
		return
	}

	li := logic.NewLineItem(item, req.Selections, quantity)
	c.JSON(http.StatusOK, quoteView{
		MenuItemID:           item.ID,
		BasePrice:            money(item.Price),
		Surcharge:            money(logic.CustomizationSurcharge(req.Selections, item)),
		UnitPrice:            money(li.UnitPrice),
		Quantity:             quantity,
		LineItemPrice:        money(li.LineTotal),
		Selections:           li.Selections,
		CustomizationDisplay: li.CustomizationDisplay,
		CartItemID:           li.ID,
	})
}

// --------------------------------------------------
// Cart
// --------------------------------------------------

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, toCartView(h.cart.Snapshot()))
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if err := logic.RequireNotEmpty(req.MenuItemID, logic.ErrMsgMenuItemIDRequired); err != nil {
		writeError(c, err)
		return
	}

	item, ok := h.menu.Get(req.MenuItemID)
	if !ok {
		writeError(c, errMenuItemNotFound)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	li, err := h.cart.AddItem(c.Request.Context(), item, req.Selections, quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	h.log.Info("item added to cart",
		zap.String("request_id", c.GetString("request_id")),
		zap.String("cart_item_id", li.ID),
		zap.Int("quantity", li.Quantity))

	c.JSON(http.StatusCreated, gin.H{
		"item": toLineItemView(li),
		"cart": toCartView(h.cart.Snapshot()),
	})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Quantity == nil {
		badRequest(c, "quantity is required")
		return
	}

	if err := h.cart.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(h.cart.Snapshot()))
}

func (h *Handler) RemoveItem(c *gin.Context) {
	h.cart.RemoveItem(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, toCartView(h.cart.Snapshot()))
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.cart.Clear(c.Request.Context())
	c.JSON(http.StatusOK, toCartView(h.cart.Snapshot()))
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
