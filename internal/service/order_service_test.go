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

func setupOrderServiceTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:order_service_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Faction{}, &models.Product{}, &models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, table := range []string{"order_items", "orders", "cart_items", "carts", "products"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("reset %s failed: %v", table, err)
		}
	}
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	return NewOrderService(repository.NewOrderRepository(db), cartRepo), NewCartService(cartRepo, productRepo), db
}

func TestPlaceFromCartSnapshotsAndClears(t *testing.T) {
	orders, carts, db := setupOrderServiceTest(t)
	starter := seedProduct(t, db, "Legion Starter", constants.CategoryStarterSet, "5000.00", true)
	miniature := seedProduct(t, db, "Legion Warband", constants.CategoryMiniature, "1500.00", true)

	if _, err := carts.AddProduct(301, starter.ID); err != nil {
		t.Fatalf("add starter failed: %v", err)
	}
	if _, err := carts.AddProduct(301, miniature.ID); err != nil {
		t.Fatalf("add miniature failed: %v", err)
	}
	if _, err := carts.AddProduct(301, miniature.ID); err != nil {
		t.Fatalf("add miniature again failed: %v", err)
	}

	order, err := orders.PlaceFromCart(301)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want PENDING got %s", order.Status)
	}
	if order.TotalAmount.String() != "7500.00" {
		t.Fatalf("total want 7500.00 got %s", order.TotalAmount.String())
	}
	if len(order.Items) != 2 {
		t.Fatalf("order items want 2 got %d", len(order.Items))
	}
	if order.OrderNumber == "" {
		t.Fatalf("order number must be set")
	}

	for _, item := range order.Items {
		switch item.ProductID {
		case starter.ID:
			if item.UnitPrice.String() != "4500.00" || item.Quantity != 1 {
				t.Fatalf("starter snapshot wrong: %+v", item)
			}
		case miniature.ID:
			if item.UnitPrice.String() != "1500.00" || item.Quantity != 2 || item.LineTotal.String() != "3000.00" {
				t.Fatalf("miniature snapshot wrong: %+v", item)
			}
		default:
			t.Fatalf("unexpected product in order: %+v", item)
		}
	}

	// Cart is emptied but still exists.
	detail, err := carts.Detail(301)
	if err != nil {
		t.Fatalf("cart detail after order failed: %v", err)
	}
	if len(detail.Lines) != 0 {
		t.Fatalf("cart should be empty after placing the order")
	}
}

func TestPlaceFromCartSnapshotSurvivesCatalogEdit(t *testing.T) {
	orders, carts, db := setupOrderServiceTest(t)
	product := seedProduct(t, db, "Reaver Skiff", constants.CategoryMiniature, "900.00", true)

	if _, err := carts.AddProduct(302, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orders.PlaceFromCart(302)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// Reprice and rename the product after the fact.
	product.Price = moneyFromString(t, "9999.00")
	product.Name = "Renamed Skiff"
	if err := db.Save(product).Error; err != nil {
		t.Fatalf("reprice failed: %v", err)
	}

	got, err := orders.GetForUser(302, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Items[0].UnitPrice.String() != "900.00" || got.Items[0].ProductName != "Reaver Skiff" {
		t.Fatalf("snapshot should be immutable, got %+v", got.Items[0])
	}
}

func TestPlaceFromCartWithoutCart(t *testing.T) {
	orders, _, _ := setupOrderServiceTest(t)

	if _, err := orders.PlaceFromCart(303); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("want ErrCartNotFound got %v", err)
	}
}

func TestPlaceFromCartEmptyCart(t *testing.T) {
	orders, carts, db := setupOrderServiceTest(t)
	product := seedProduct(t, db, "Citadel Keep", constants.CategoryAccessory, "3000.00", true)

	detail, err := carts.AddProduct(304, product.ID)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := carts.RemoveItem(304, detail.Lines[0].ItemID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if _, err := orders.PlaceFromCart(304); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty got %v", err)
	}
}

func TestGetForUserScopesOwnership(t *testing.T) {
	orders, carts, db := setupOrderServiceTest(t)
	product := seedProduct(t, db, "Sylvan Archers", constants.CategoryMiniature, "1200.00", true)

	if _, err := carts.AddProduct(305, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orders.PlaceFromCart(305)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if _, err := orders.GetForUser(306, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign order want ErrOrderNotFound got %v", err)
	}
}
