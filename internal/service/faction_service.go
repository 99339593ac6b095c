package service

import (
	"context"
	"strings"

	"github.com/forgehall/forgehall/internal/cache"
	"github.com/forgehall/forgehall/internal/logger"
	"github.com/forgehall/forgehall/internal/models"
	"github.com/forgehall/forgehall/internal/repository"
)

// FactionInput carries admin-supplied faction fields.
type FactionInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	SortOrder   int    `json:"sort_order"`
}

// FactionService maintains the faction index for the admin surface.
type FactionService struct {
	factionRepo repository.FactionRepository
}

// NewFactionService creates a faction service.
func NewFactionService(factionRepo repository.FactionRepository) *FactionService {
	return &FactionService{factionRepo: factionRepo}
}

// List returns every faction.
func (s *FactionService) List() ([]models.Faction, error) {
	return s.factionRepo.List()
}

// Get returns one faction.
func (s *FactionService) Get(id uint) (*models.Faction, error) {
	if id == 0 {
		return nil, ErrFactionNotFound
	}
	faction, err := s.factionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if faction == nil {
		return nil, ErrFactionNotFound
	}
	return faction, nil
}

// Create adds a faction.
func (s *FactionService) Create(input FactionInput) (*models.Faction, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	faction := &models.Faction{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		LogoURL:     strings.TrimSpace(input.LogoURL),
		SortOrder:   input.SortOrder,
	}
	if err := s.factionRepo.Create(faction); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return faction, nil
}

// Update rewrites a faction's fields.
func (s *FactionService) Update(id uint, input FactionInput) (*models.Faction, error) {
	faction, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	faction.Name = name
	faction.Description = strings.TrimSpace(input.Description)
	faction.LogoURL = strings.TrimSpace(input.LogoURL)
	faction.SortOrder = input.SortOrder
	if err := s.factionRepo.Update(faction); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return faction, nil
}

// Delete removes a faction. A faction that still owns products stays; the
// admin has to move or delete those first.
func (s *FactionService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.factionRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrFactionInUse
	}
	if err := s.factionRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *FactionService) invalidateCache() {
	if err := cache.InvalidateFactionList(context.Background()); err != nil {
		logger.Warnw("faction_list_cache_invalidate_failed", "error", err)
	}
}
