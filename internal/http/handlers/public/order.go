package public

import (
	"strconv"

	"github.com/forgehall/forgehall/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreateOrder snapshots the caller's cart into a PENDING order and clears
// the cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.PlaceFromCart(uid)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// ListOrders returns the caller's orders, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListForUser(uid, page, pageSize)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder returns one of the caller's orders. Someone else's order ID
// reads as not-found.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		return
	}

	order, err := h.OrderService.GetForUser(uid, uint(orderID))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}
