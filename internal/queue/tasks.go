package queue

import (
	"encoding/json"

	"github.com/forgehall/forgehall/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCartPurgeProduct removes cart lines pointing at a deleted product.
	TaskCartPurgeProduct = constants.TaskCartPurgeProduct
)

// CartPurgeProductPayload identifies the deleted product to purge.
type CartPurgeProductPayload struct {
	ProductID uint `json:"product_id"`
}

// NewCartPurgeProductTask creates a cart purge task.
func NewCartPurgeProductTask(payload CartPurgeProductPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCartPurgeProduct, body), nil
}
