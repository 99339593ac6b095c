package service

import (
	"context"
	"strings"

	"github.com/forgehall/forgehall/internal/cache"
	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/logger"
	"github.com/forgehall/forgehall/internal/models"
	"github.com/forgehall/forgehall/internal/repository"
)

// CatalogProduct is a product as the storefront sees it: the list price
// plus the price actually charged after the starter-set discount.
type CatalogProduct struct {
	Product        models.Product `json:"product"`
	EffectivePrice models.Money   `json:"effective_price"`
	Discounted     bool           `json:"discounted"`
}

// CatalogView is the catalog page payload. Variant tells the storefront
// what to render. The faction index ships with every variant so the page
// can always draw its navigation; Faction and Products are populated only
// where the variant calls for them.
type CatalogView struct {
	Variant  string           `json:"variant"`
	Factions []models.Faction `json:"factions"`
	Faction  *models.Faction  `json:"faction,omitempty"`
	Category string           `json:"category,omitempty"`
	Products []CatalogProduct `json:"products,omitempty"`
}

// CatalogQuery carries the catalog filters. Zero values mean "no filter".
type CatalogQuery struct {
	FactionID uint
	Category  string
}

// CatalogService serves the public storefront pages.
type CatalogService struct {
	factionRepo repository.FactionRepository
	productRepo repository.ProductRepository
}

// NewCatalogService creates a catalog service.
func NewCatalogService(factionRepo repository.FactionRepository, productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		factionRepo: factionRepo,
		productRepo: productRepo,
	}
}

// Browse resolves the catalog page for the given filters. The variant
// depends on which filters are present:
//
//	faction (+ category) -> faction_products: one faction and its products
//	no filter            -> faction_list: just the faction index
//	category only        -> product_list: a category across all factions
//
// An unknown faction ID is a not-found, an unknown category a bad request.
func (s *CatalogService) Browse(query CatalogQuery) (*CatalogView, error) {
	category := strings.TrimSpace(query.Category)
	if category != "" && !constants.IsProductCategory(category) {
		return nil, ErrInvalidCategory
	}

	factions, err := s.factions()
	if err != nil {
		return nil, err
	}

	if query.FactionID != 0 {
		return s.browseFaction(factions, query.FactionID, category)
	}
	if category != "" {
		return s.browseCategory(factions, category)
	}
	return &CatalogView{
		Variant:  constants.CatalogVariantFactionList,
		Factions: factions,
	}, nil
}

func (s *CatalogService) browseFaction(factions []models.Faction, factionID uint, category string) (*CatalogView, error) {
	faction, err := s.factionRepo.GetByID(factionID)
	if err != nil {
		return nil, err
	}
	if faction == nil {
		return nil, ErrFactionNotFound
	}

	products, _, err := s.productRepo.List(repository.ProductListFilter{
		FactionID:  &faction.ID,
		Category:   category,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}

	return &CatalogView{
		Variant:  constants.CatalogVariantFactionProducts,
		Factions: factions,
		Faction:  faction,
		Category: category,
		Products: toCatalogProducts(products),
	}, nil
}

func (s *CatalogService) browseCategory(factions []models.Faction, category string) (*CatalogView, error) {
	products, _, err := s.productRepo.List(repository.ProductListFilter{
		Category:    category,
		OnlyActive:  true,
		WithFaction: true,
	})
	if err != nil {
		return nil, err
	}

	return &CatalogView{
		Variant:  constants.CatalogVariantProductList,
		Factions: factions,
		Category: category,
		Products: toCatalogProducts(products),
	}, nil
}

// ListFactions serves the standalone faction index endpoint.
func (s *CatalogService) ListFactions() ([]models.Faction, error) {
	return s.factions()
}

// factions reads the faction index through the cache. Cache trouble is
// logged and the database answers instead.
func (s *CatalogService) factions() ([]models.Faction, error) {
	ctx := context.Background()
	if cached, hit, err := cache.GetFactionList(ctx); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("faction_list_cache_read_failed", "error", err)
	}

	factions, err := s.factionRepo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetFactionList(ctx, factions); err != nil {
		logger.Warnw("faction_list_cache_write_failed", "error", err)
	}
	return factions, nil
}

// GetProduct returns one active product for the public detail page.
func (s *CatalogService) GetProduct(id uint) (*CatalogProduct, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	detail := toCatalogProduct(*product)
	return &detail, nil
}

func toCatalogProducts(products []models.Product) []CatalogProduct {
	out := make([]CatalogProduct, 0, len(products))
	for _, product := range products {
		out = append(out, toCatalogProduct(product))
	}
	return out
}

func toCatalogProduct(product models.Product) CatalogProduct {
	effective := EffectiveUnitPrice(&product)
	return CatalogProduct{
		Product:        product,
		EffectivePrice: effective,
		Discounted:     product.Category == constants.CategoryStarterSet,
	}
}
