package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/models"
	"github.com/forgehall/forgehall/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService turns carts into write-once order records and reads them
// back. Orders never change after creation; there is no payment and no
// status machine here.
type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

// PlaceFromCart snapshots the user's cart into a PENDING order and clears
// the cart, all in one transaction. Product names and charged unit prices
// are copied into the order's own rows so later catalog edits cannot
// rewrite history.
func (s *OrderService) PlaceFromCart(userID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	detail, err := s.cartRepo.GetDetail(cart.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrCartNotFound
	}

	items := make([]models.OrderItem, 0, len(detail.Items))
	total := decimal.Zero
	for _, line := range detail.Items {
		product := line.Product
		if product == nil || product.ID == 0 {
			continue
		}
		unit := EffectiveUnitPrice(product)
		lineTotal := LineTotal(product, line.Quantity)
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: product.Name,
			UnitPrice:   unit,
			Quantity:    line.Quantity,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal.Decimal)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		OrderNumber: newOrderNumber(),
		UserID:      userID,
		Status:      constants.OrderStatusPending,
		TotalAmount: models.NewMoneyFromDecimal(total),
		Items:       items,
	}

	err = s.cartRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		for _, line := range detail.Items {
			if err := s.cartRepo.WithTx(tx).DeleteItem(line.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListForUser returns the user's own orders.
func (s *OrderService) ListForUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.orderRepo.List(repository.OrderListFilter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetForUser returns one of the user's own orders.
func (s *OrderService) GetForUser(userID, orderID uint) (*models.Order, error) {
	if userID == 0 || orderID == 0 {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByIDForUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns orders for the admin surface.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// Get returns one order for the admin surface.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// newOrderNumber builds a sortable, human-quotable order number.
func newOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("FH%s%s", time.Now().UTC().Format("20060102150405"), strings.ToUpper(suffix))
}
