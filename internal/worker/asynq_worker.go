package worker

import (
	"context"
	"encoding/json"

	"github.com/forgehall/forgehall/internal/logger"
	"github.com/forgehall/forgehall/internal/provider"
	"github.com/forgehall/forgehall/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks against the shared container.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires the consumer's handlers into the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCartPurgeProduct, c.handleCartPurgeProduct)
}

func (c *Consumer) handleCartPurgeProduct(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_cart_purge_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CartPurgeProductPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_cart_purge_unmarshal_failed", "error", err)
		return err
	}
	if payload.ProductID == 0 {
		logger.Debugw("worker_cart_purge_skip_invalid_payload", "product_id", payload.ProductID)
		return nil
	}
	removed, err := c.CartRepo.DeleteItemsByProduct(payload.ProductID)
	if err != nil {
		logger.Warnw("worker_cart_purge_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	if removed > 0 {
		logger.Infow("worker_cart_purge_done", "product_id", payload.ProductID, "removed", removed)
	}
	return nil
}
