package public

import (
	"strconv"
	"strings"

	"github.com/forgehall/forgehall/internal/http/response"
	"github.com/forgehall/forgehall/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCatalog serves the storefront catalog page. Which payload variant
// comes back depends on the faction and type filters.
func (h *Handler) GetCatalog(c *gin.Context) {
	var factionID uint
	if raw := strings.TrimSpace(c.Query("faction")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			respondError(c, response.CodeNotFound, "error.faction_not_found", nil)
			return
		}
		factionID = uint(parsed)
	}

	view, err := h.CatalogService.Browse(service.CatalogQuery{
		FactionID: factionID,
		Category:  strings.ToUpper(strings.TrimSpace(c.Query("type"))),
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, view)
}

// GetFactions serves the faction index.
func (h *Handler) GetFactions(c *gin.Context) {
	factions, err := h.CatalogService.ListFactions()
	if err != nil {
		respondError(c, response.CodeInternal, "error.faction_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"factions": factions})
}

// GetProduct serves the public product detail page.
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		return
	}
	product, err := h.CatalogService.GetProduct(uint(productID))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, product)
}
