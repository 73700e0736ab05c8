package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cartapp "github.com/storefront/backend/internal/application/cart"
)

// CartHandler handles cart-related API endpoints
type CartHandler struct {
	BaseHandler
	cartService *cartapp.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Create handles POST /carts. A cart starts empty; the response carries
// its ID for subsequent item operations.
func (h *CartHandler) Create(c *gin.Context) {
	cart, err := h.cartService.Create(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cart)
}

// Get handles GET /carts/:id. Lines are resolved against live product
// prices, so the total reflects current catalog state.
func (h *CartHandler) Get(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}

	cart, err := h.cartService.Get(c.Request.Context(), cartID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cart)
}

// AddItem handles POST /carts/:id/items. Adding a product already in the
// cart merges quantities into the existing line.
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}

	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.cartService.AddItem(c.Request.Context(), cartID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// UpdateItem handles PUT /carts/:id/items/:item_id. The quantity is
// replaced, not merged.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var req cartapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.cartService.UpdateItemQuantity(c.Request.Context(), cartID, itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// RemoveItem handles DELETE /carts/:id/items/:item_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), cartID, itemID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete handles DELETE /carts/:id
func (h *CartHandler) Delete(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return
	}

	if err := h.cartService.Delete(c.Request.Context(), cartID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
