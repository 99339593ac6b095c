package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/forgehall/forgehall/internal/http/response"
	"github.com/forgehall/forgehall/internal/repository"
	"github.com/forgehall/forgehall/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest carries the product form. Price travels as a string so
// the decimal survives the JSON round trip.
type ProductRequest struct {
	FactionID   *uint      `json:"faction_id"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category" binding:"required"`
	Price       string     `json:"price" binding:"required"`
	Stock       int        `json:"stock"`
	IsPreorder  bool       `json:"is_preorder"`
	ReleaseDate *time.Time `json:"release_date"`
	ImageURL    string     `json:"image_url"`
	IsActive    *bool      `json:"is_active"`
	SortOrder   int        `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		FactionID:   r.FactionID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		IsPreorder:  r.IsPreorder,
		ReleaseDate: r.ReleaseDate,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// GetProducts lists products for the admin table, inactive ones included.
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Category: strings.ToUpper(strings.TrimSpace(c.Query("category"))),
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := strings.TrimSpace(c.Query("faction_id")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		factionID := uint(parsed)
		filter.FactionID = &factionID
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetProduct returns one product.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := paramID(c, "error.product_not_found")
	if !ok {
		return
	}

	product, err := h.ProductService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// CreateProduct adds a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondProductSaveError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct rewrites a product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "error.product_not_found")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondProductSaveError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct soft-deletes a product and schedules the purge of cart
// lines still pointing at it.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "error.product_not_found")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
		return
	}
	response.Success(c, nil)
}

func respondProductSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrFactionNotFound):
		respondError(c, response.CodeNotFound, "error.faction_not_found", nil)
	case errors.Is(err, service.ErrInvalidCategory):
		respondError(c, response.CodeBadRequest, "error.category_invalid", nil)
	case errors.Is(err, service.ErrInvalidPrice):
		respondError(c, response.CodeBadRequest, "error.price_invalid", nil)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
	default:
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
	}
}
