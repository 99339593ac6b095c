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

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:cart_service_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Faction{}, &models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, table := range []string{"cart_items", "carts", "products"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("reset %s failed: %v", table, err)
		}
	}
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func seedProduct(t *testing.T, db *gorm.DB, name, category, price string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Category: category,
		Price:    moneyFromString(t, price),
		Stock:    10,
		IsActive: active,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestCartDetailWithoutCartIsNotFound(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	_, err := svc.Detail(201)
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("want ErrCartNotFound got %v", err)
	}
}

func TestAddProductCreatesCartLazily(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedProduct(t, db, "Legion Warband", constants.CategoryMiniature, "1500.00", true)

	detail, err := svc.AddProduct(202, product.ID)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if detail.TotalQuantity != 1 || len(detail.Lines) != 1 {
		t.Fatalf("want one line qty 1, got %+v", detail)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Where("user_id = ?", 202).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("cart rows want 1 got %d", count)
	}
}

func TestAddSameProductTwiceIncrementsOneLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedProduct(t, db, "Reaver Skiff", constants.CategoryMiniature, "900.00", true)

	if _, err := svc.AddProduct(203, product.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	detail, err := svc.AddProduct(203, product.ID)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(detail.Lines) != 1 {
		t.Fatalf("line count want 1 got %d", len(detail.Lines))
	}
	if detail.Lines[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", detail.Lines[0].Quantity)
	}
}

func TestAddUnknownOrInactiveProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	inactive := seedProduct(t, db, "Retired Kit", constants.CategoryMiniature, "100.00", false)

	if _, err := svc.AddProduct(204, 99999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product want ErrProductNotFound got %v", err)
	}
	if _, err := svc.AddProduct(204, inactive.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("inactive product want ErrProductNotFound got %v", err)
	}
}

func TestCartTotalsWithStarterDiscount(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	starter := seedProduct(t, db, "Legion Starter", constants.CategoryStarterSet, "5000.00", true)
	miniature := seedProduct(t, db, "Legion Warband", constants.CategoryMiniature, "1500.00", true)

	if _, err := svc.AddProduct(205, starter.ID); err != nil {
		t.Fatalf("add starter failed: %v", err)
	}
	if _, err := svc.AddProduct(205, miniature.ID); err != nil {
		t.Fatalf("add miniature failed: %v", err)
	}
	detail, err := svc.AddProduct(205, miniature.ID)
	if err != nil {
		t.Fatalf("add miniature again failed: %v", err)
	}

	if detail.TotalQuantity != 3 {
		t.Fatalf("total quantity want 3 got %d", detail.TotalQuantity)
	}
	if detail.TotalPrice.String() != "7500.00" {
		t.Fatalf("total price want 7500.00 got %s", detail.TotalPrice.String())
	}

	for _, line := range detail.Lines {
		if line.ProductID == starter.ID {
			if line.UnitPrice.String() != "4500.00" || !line.Discounted {
				t.Fatalf("starter line want 4500.00 discounted, got %+v", line)
			}
		}
		if line.ProductID == miniature.ID {
			if line.UnitPrice.String() != "1500.00" || line.Discounted {
				t.Fatalf("miniature line want 1500.00 undiscounted, got %+v", line)
			}
		}
	}
}

func TestUpdateQuantitySetsAndDeletes(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedProduct(t, db, "Sylvan Archers", constants.CategoryMiniature, "1200.00", true)

	detail, err := svc.AddProduct(206, product.ID)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	itemID := detail.Lines[0].ItemID

	detail, err = svc.UpdateQuantity(206, itemID, 3)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if detail.Lines[0].Quantity != 3 || detail.TotalQuantity != 3 {
		t.Fatalf("quantity want 3 got %+v", detail)
	}

	detail, err = svc.UpdateQuantity(206, itemID, 0)
	if err != nil {
		t.Fatalf("zero quantity failed: %v", err)
	}
	if len(detail.Lines) != 0 {
		t.Fatalf("zero quantity should delete the line, got %+v", detail.Lines)
	}

	// Negative behaves the same as zero.
	detail, err = svc.AddProduct(206, product.ID)
	if err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	detail, err = svc.UpdateQuantity(206, detail.Lines[0].ItemID, -1)
	if err != nil {
		t.Fatalf("negative quantity failed: %v", err)
	}
	if len(detail.Lines) != 0 {
		t.Fatalf("negative quantity should delete the line")
	}
}

func TestRemoveItemOwnershipAndMissing(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedProduct(t, db, "Citadel Keep", constants.CategoryAccessory, "3000.00", true)

	detail, err := svc.AddProduct(207, product.ID)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	itemID := detail.Lines[0].ItemID

	// Another user with a cart cannot touch the line.
	if _, err := svc.AddProduct(208, product.ID); err != nil {
		t.Fatalf("other user add failed: %v", err)
	}
	if _, err := svc.RemoveItem(208, itemID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("foreign item want ErrCartItemNotFound got %v", err)
	}

	// A user without any cart gets cart-not-found.
	if _, err := svc.RemoveItem(209, itemID); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("no cart want ErrCartNotFound got %v", err)
	}

	detail, err = svc.RemoveItem(207, itemID)
	if err != nil {
		t.Fatalf("owner remove failed: %v", err)
	}
	if len(detail.Lines) != 0 {
		t.Fatalf("line should be gone, got %+v", detail.Lines)
	}

	if _, err := svc.RemoveItem(207, itemID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("removed item want ErrCartItemNotFound got %v", err)
	}
}
