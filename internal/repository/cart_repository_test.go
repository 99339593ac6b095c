package repository

import (
	"testing"

	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:cart_repo_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Faction{}, &models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	if err := db.Exec("DELETE FROM cart_items").Error; err != nil {
		t.Fatalf("reset cart_items failed: %v", err)
	}
	if err := db.Exec("DELETE FROM carts").Error; err != nil {
		t.Fatalf("reset carts failed: %v", err)
	}
	if err := db.Exec("DELETE FROM products").Error; err != nil {
		t.Fatalf("reset products failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartTestProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Category: constants.CategoryMiniature,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Stock:    10,
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestGetByUserWithoutCartReturnsNil(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)

	cart, err := repo.GetByUser(101)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart != nil {
		t.Fatalf("expected no cart, got id=%d", cart.ID)
	}
}

func TestGetOrCreateByUserIsIdempotent(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)

	first, err := repo.GetOrCreateByUser(102)
	if err != nil {
		t.Fatalf("first get-or-create failed: %v", err)
	}
	if first == nil || first.ID == 0 {
		t.Fatalf("expected persisted cart, got %+v", first)
	}

	second, err := repo.GetOrCreateByUser(102)
	if err != nil {
		t.Fatalf("second get-or-create failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("cart id changed: first=%d second=%d", first.ID, second.ID)
	}
}

func TestAddOneTwiceIncrementsQuantity(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "Iron Legion Warband", 1500)

	cart, err := repo.GetOrCreateByUser(103)
	if err != nil {
		t.Fatalf("get-or-create cart failed: %v", err)
	}

	if err := repo.AddOne(cart.ID, product.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := repo.AddOne(cart.ID, product.ID); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("line count want 1 got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", items[0].Quantity)
	}
}

func TestGetItemForCartScopesOwnership(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "Void Reavers Raider", 900)

	owner, err := repo.GetOrCreateByUser(104)
	if err != nil {
		t.Fatalf("owner cart failed: %v", err)
	}
	other, err := repo.GetOrCreateByUser(105)
	if err != nil {
		t.Fatalf("other cart failed: %v", err)
	}
	if err := repo.AddOne(owner.ID, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var line models.CartItem
	if err := db.Where("cart_id = ?", owner.ID).First(&line).Error; err != nil {
		t.Fatalf("fetch line failed: %v", err)
	}

	got, err := repo.GetItemForCart(other.ID, line.ID)
	if err != nil {
		t.Fatalf("scoped fetch failed: %v", err)
	}
	if got != nil {
		t.Fatalf("line must not be visible from another cart")
	}

	got, err = repo.GetItemForCart(owner.ID, line.ID)
	if err != nil {
		t.Fatalf("owner fetch failed: %v", err)
	}
	if got == nil || got.ID != line.ID {
		t.Fatalf("owner should see the line")
	}
}

func TestDeleteItemsByProduct(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	kept := createCartTestProduct(t, db, "Sylvan Court Archers", 1200)
	removed := createCartTestProduct(t, db, "Discontinued Blister", 500)

	cart, err := repo.GetOrCreateByUser(106)
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	if err := repo.AddOne(cart.ID, kept.ID); err != nil {
		t.Fatalf("add kept failed: %v", err)
	}
	if err := repo.AddOne(cart.ID, removed.ID); err != nil {
		t.Fatalf("add removed failed: %v", err)
	}

	affected, err := repo.DeleteItemsByProduct(removed.ID)
	if err != nil {
		t.Fatalf("delete by product failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("remaining lines want 1 got %d", count)
	}
}

func TestDeleteOrphanItems(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	live := createCartTestProduct(t, db, "Citadel Keep", 3000)
	doomed := createCartTestProduct(t, db, "Recalled Paint Pot", 350)

	cart, err := repo.GetOrCreateByUser(107)
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	if err := repo.AddOne(cart.ID, live.ID); err != nil {
		t.Fatalf("add live failed: %v", err)
	}
	if err := repo.AddOne(cart.ID, doomed.ID); err != nil {
		t.Fatalf("add doomed failed: %v", err)
	}

	// Soft-delete bypassing the purge hook, as if the hook was missed.
	if err := db.Delete(&models.Product{}, doomed.ID).Error; err != nil {
		t.Fatalf("soft delete product failed: %v", err)
	}

	affected, err := repo.DeleteOrphanItems()
	if err != nil {
		t.Fatalf("orphan sweep failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("sweep affected want 1 got %d", affected)
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != live.ID {
		t.Fatalf("only the live product line should survive, got %+v", items)
	}
}
