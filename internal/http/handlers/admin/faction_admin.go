package admin

import (
	"errors"
	"strconv"

	"github.com/forgehall/forgehall/internal/http/response"
	"github.com/forgehall/forgehall/internal/service"

	"github.com/gin-gonic/gin"
)

// FactionRequest carries the faction form.
type FactionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	SortOrder   int    `json:"sort_order"`
}

func (r FactionRequest) toInput() service.FactionInput {
	return service.FactionInput{
		Name:        r.Name,
		Description: r.Description,
		LogoURL:     r.LogoURL,
		SortOrder:   r.SortOrder,
	}
}

// GetFactions lists every faction for the admin table.
func (h *Handler) GetFactions(c *gin.Context) {
	factions, err := h.FactionService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.faction_fetch_failed", err)
		return
	}
	response.Success(c, factions)
}

// GetFaction returns one faction.
func (h *Handler) GetFaction(c *gin.Context) {
	id, ok := paramID(c, "error.faction_not_found")
	if !ok {
		return
	}

	faction, err := h.FactionService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrFactionNotFound) {
			respondError(c, response.CodeNotFound, "error.faction_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.faction_fetch_failed", err)
		return
	}
	response.Success(c, faction)
}

// CreateFaction adds a faction.
func (h *Handler) CreateFaction(c *gin.Context) {
	var req FactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	faction, err := h.FactionService.Create(req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.faction_save_failed", err)
		return
	}
	response.Success(c, faction)
}

// UpdateFaction rewrites a faction.
func (h *Handler) UpdateFaction(c *gin.Context) {
	id, ok := paramID(c, "error.faction_not_found")
	if !ok {
		return
	}
	var req FactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	faction, err := h.FactionService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFactionNotFound):
			respondError(c, response.CodeNotFound, "error.faction_not_found", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.faction_save_failed", err)
		}
		return
	}
	response.Success(c, faction)
}

// DeleteFaction removes a faction. One that still owns products is
// refused.
func (h *Handler) DeleteFaction(c *gin.Context) {
	id, ok := paramID(c, "error.faction_not_found")
	if !ok {
		return
	}

	if err := h.FactionService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrFactionNotFound):
			respondError(c, response.CodeNotFound, "error.faction_not_found", nil)
		case errors.Is(err, service.ErrFactionInUse):
			respondError(c, response.CodeBadRequest, "error.faction_in_use", nil)
		default:
			respondError(c, response.CodeInternal, "error.faction_save_failed", err)
		}
		return
	}
	response.Success(c, nil)
}

// paramID parses the :id route parameter, answering notFoundKey when it
// is not a positive integer.
func paramID(c *gin.Context, notFoundKey string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeNotFound, notFoundKey, nil)
		return 0, false
	}
	return uint(id), true
}
