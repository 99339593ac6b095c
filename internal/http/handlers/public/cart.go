package public

import (
	"strconv"

	"github.com/forgehall/forgehall/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdateCartItemRequest carries the quantity box value.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the caller's cart detail. A user who never added
// anything has no cart and gets a 404 code.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	detail, err := h.CartService.Detail(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}

// AddCartItem puts one unit of a product into the cart, creating the cart
// on first use. Re-adding a product increments its line instead.
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		return
	}

	detail, err := h.CartService.AddProduct(uid, uint(productID))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}

// UpdateCartItem sets a line's quantity. Zero or less removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeNotFound, "error.cart_item_not_found", nil)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	detail, err := h.CartService.UpdateQuantity(uid, uint(itemID), req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}

// DeleteCartItem removes a line from the cart.
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeNotFound, "error.cart_item_not_found", nil)
		return
	}

	detail, err := h.CartService.RemoveItem(uid, uint(itemID))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, detail)
}
