package repository

import (
	"testing"

	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:product_repo_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Faction{}, &models.Product{}); err != nil {
		t.Fatalf("migrate product tables failed: %v", err)
	}
	if err := db.Exec("DELETE FROM products").Error; err != nil {
		t.Fatalf("reset products failed: %v", err)
	}
	if err := db.Exec("DELETE FROM factions").Error; err != nil {
		t.Fatalf("reset factions failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createFaction(t *testing.T, db *gorm.DB, name string) *models.Faction {
	t.Helper()
	faction := &models.Faction{Name: name}
	if err := db.Create(faction).Error; err != nil {
		t.Fatalf("create faction failed: %v", err)
	}
	return faction
}

func createProduct(t *testing.T, repo *GormProductRepository, name, category string, factionID *uint, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:      name,
		Category:  category,
		FactionID: factionID,
		Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(1000)),
		Stock:     5,
		IsActive:  active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListFiltersByFactionAndCategory(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	legion := createFaction(t, db, "Iron Legion")
	reavers := createFaction(t, db, "Void Reavers")

	createProduct(t, repo, "Legion Starter", constants.CategoryStarterSet, &legion.ID, true)
	createProduct(t, repo, "Legion Warband", constants.CategoryMiniature, &legion.ID, true)
	createProduct(t, repo, "Reaver Skiff", constants.CategoryMiniature, &reavers.ID, true)
	createProduct(t, repo, "Crimson Wash", constants.CategoryPaint, nil, true)

	products, total, err := repo.List(ProductListFilter{FactionID: &legion.ID, OnlyActive: true})
	if err != nil {
		t.Fatalf("list by faction failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("faction filter want 2 got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{
		FactionID:  &legion.ID,
		Category:   constants.CategoryStarterSet,
		OnlyActive: true,
	})
	if err != nil {
		t.Fatalf("list by faction+category failed: %v", err)
	}
	if total != 1 || products[0].Name != "Legion Starter" {
		t.Fatalf("combined filter want Legion Starter got total=%d %+v", total, products)
	}

	products, total, err = repo.List(ProductListFilter{Category: constants.CategoryPaint, OnlyActive: true})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 1 || products[0].Name != "Crimson Wash" {
		t.Fatalf("category filter want Crimson Wash got total=%d", total)
	}
}

func TestProductListOnlyActiveHidesInactive(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createProduct(t, repo, "Visible Kit", constants.CategoryMiniature, nil, true)
	createProduct(t, repo, "Hidden Kit", constants.CategoryMiniature, nil, false)

	products, total, err := repo.List(ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || products[0].Name != "Visible Kit" {
		t.Fatalf("only the active product should be listed, got total=%d", total)
	}

	_, total, err = repo.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("admin list should include inactive, got total=%d", total)
	}
}

func TestProductGetByIDMissingReturnsNil(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product, err := repo.GetByID(99999)
	if err != nil {
		t.Fatalf("get missing product failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil for missing product")
	}
}
