package service

import (
	"errors"
	"testing"

	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/models"
	"github.com/forgehall/forgehall/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:catalog_service_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Faction{}, &models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, table := range []string{"products", "factions"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("reset %s failed: %v", table, err)
		}
	}
	return NewCatalogService(repository.NewFactionRepository(db), repository.NewProductRepository(db)), db
}

func seedCatalog(t *testing.T, db *gorm.DB) (legion, reavers *models.Faction) {
	t.Helper()
	legion = &models.Faction{Name: "Iron Legion"}
	reavers = &models.Faction{Name: "Void Reavers"}
	for _, f := range []*models.Faction{legion, reavers} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("seed faction failed: %v", err)
		}
	}
	products := []*models.Product{
		{Name: "Legion Starter", Category: constants.CategoryStarterSet, FactionID: &legion.ID, Price: moneyFromString(t, "5000.00"), IsActive: true},
		{Name: "Legion Warband", Category: constants.CategoryMiniature, FactionID: &legion.ID, Price: moneyFromString(t, "1500.00"), IsActive: true},
		{Name: "Reaver Skiff", Category: constants.CategoryMiniature, FactionID: &reavers.ID, Price: moneyFromString(t, "900.00"), IsActive: true},
		{Name: "Crimson Wash", Category: constants.CategoryPaint, Price: moneyFromString(t, "12.50"), IsActive: true},
	}
	for _, p := range products {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}
	return legion, reavers
}

func TestBrowseNoFiltersReturnsFactionList(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	view, err := svc.Browse(CatalogQuery{})
	if err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	if view.Variant != constants.CatalogVariantFactionList {
		t.Fatalf("variant want faction_list got %s", view.Variant)
	}
	if len(view.Factions) != 2 {
		t.Fatalf("factions want 2 got %d", len(view.Factions))
	}
	if len(view.Products) != 0 || view.Faction != nil {
		t.Fatalf("faction_list must not carry products or a selected faction")
	}
}

func TestBrowseFactionReturnsFactionProducts(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	legion, _ := seedCatalog(t, db)

	view, err := svc.Browse(CatalogQuery{FactionID: legion.ID})
	if err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	if view.Variant != constants.CatalogVariantFactionProducts {
		t.Fatalf("variant want faction_products got %s", view.Variant)
	}
	if view.Faction == nil || view.Faction.ID != legion.ID {
		t.Fatalf("selected faction missing")
	}
	if len(view.Products) != 2 {
		t.Fatalf("legion products want 2 got %d", len(view.Products))
	}
	for _, p := range view.Products {
		if p.Product.FactionID == nil || *p.Product.FactionID != legion.ID {
			t.Fatalf("foreign product leaked into faction view: %+v", p.Product)
		}
	}
	if len(view.Factions) != 2 {
		t.Fatalf("faction index should ship with the variant")
	}
}

func TestBrowseFactionWithCategoryNarrows(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	legion, _ := seedCatalog(t, db)

	view, err := svc.Browse(CatalogQuery{FactionID: legion.ID, Category: constants.CategoryStarterSet})
	if err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	if view.Variant != constants.CatalogVariantFactionProducts {
		t.Fatalf("variant want faction_products got %s", view.Variant)
	}
	if len(view.Products) != 1 || view.Products[0].Product.Name != "Legion Starter" {
		t.Fatalf("want only Legion Starter, got %+v", view.Products)
	}
	if view.Products[0].EffectivePrice.String() != "4500.00" {
		t.Fatalf("starter effective price want 4500.00 got %s", view.Products[0].EffectivePrice.String())
	}
	if view.Category != constants.CategoryStarterSet {
		t.Fatalf("category filter should echo back")
	}
}

func TestBrowseCategoryOnlyReturnsProductList(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	view, err := svc.Browse(CatalogQuery{Category: constants.CategoryMiniature})
	if err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	if view.Variant != constants.CatalogVariantProductList {
		t.Fatalf("variant want product_list got %s", view.Variant)
	}
	if len(view.Products) != 2 {
		t.Fatalf("miniatures want 2 got %d", len(view.Products))
	}
	if view.Faction != nil {
		t.Fatalf("product_list has no selected faction")
	}
}

func TestBrowseUnknownFactionIsNotFound(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	_, err := svc.Browse(CatalogQuery{FactionID: 99999})
	if !errors.Is(err, ErrFactionNotFound) {
		t.Fatalf("want ErrFactionNotFound got %v", err)
	}
}

func TestBrowseUnknownCategoryIsInvalid(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	_, err := svc.Browse(CatalogQuery{Category: "GRIMOIRE"})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("want ErrInvalidCategory got %v", err)
	}
}

func TestGetProductHidesInactive(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	hidden := &models.Product{Name: "Hidden Kit", Category: constants.CategoryMiniature, Price: moneyFromString(t, "10.00"), IsActive: false}
	if err := db.Create(hidden).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := svc.GetProduct(hidden.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("inactive product want ErrProductNotFound got %v", err)
	}
}
