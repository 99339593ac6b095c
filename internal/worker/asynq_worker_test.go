package worker

import (
	"context"
	"testing"

	"github.com/forgehall/forgehall/internal/models"
	"github.com/forgehall/forgehall/internal/provider"
	"github.com/forgehall/forgehall/internal/queue"
	"github.com/forgehall/forgehall/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupWorkerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:worker_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, table := range []string{"cart_items", "carts", "products"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("reset %s failed: %v", table, err)
		}
	}
	consumer := NewConsumer(&provider.Container{
		CartRepo: repository.NewCartRepository(db),
	})
	return consumer, db
}

func TestHandleCartPurgeProductRemovesLines(t *testing.T) {
	consumer, db := setupWorkerTest(t)

	cart := &models.Cart{UserID: 501}
	if err := db.Create(cart).Error; err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	items := []*models.CartItem{
		{CartID: cart.ID, ProductID: 11, Quantity: 2},
		{CartID: cart.ID, ProductID: 12, Quantity: 1},
	}
	for _, item := range items {
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("seed item failed: %v", err)
		}
	}

	task, err := queue.NewCartPurgeProductTask(queue.CartPurgeProductPayload{ProductID: 11})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleCartPurgeProduct(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var remaining []models.CartItem
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("load items failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ProductID != 12 {
		t.Fatalf("only the unrelated line should survive, got %+v", remaining)
	}
}

func TestHandleCartPurgeProductIgnoresEmptyPayload(t *testing.T) {
	consumer, _ := setupWorkerTest(t)

	task := asynq.NewTask(queue.TaskCartPurgeProduct, []byte(`{"product_id":0}`))
	if err := consumer.handleCartPurgeProduct(context.Background(), task); err != nil {
		t.Fatalf("zero product id should be skipped, got %v", err)
	}
}
