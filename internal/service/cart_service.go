package service

import (
	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/models"
	"github.com/forgehall/forgehall/internal/repository"

	"github.com/shopspring/decimal"
)

// CartLine is one cart row with its charged price.
type CartLine struct {
	ItemID     uint            `json:"item_id"`
	ProductID  uint            `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  models.Money    `json:"unit_price"`
	ListPrice  models.Money    `json:"list_price"`
	LineTotal  models.Money    `json:"line_total"`
	Discounted bool            `json:"discounted"`
	Product    *models.Product `json:"product,omitempty"`
}

// CartDetail is the cart page payload.
type CartDetail struct {
	CartID        uint         `json:"cart_id"`
	Lines         []CartLine   `json:"lines"`
	TotalQuantity int          `json:"total_quantity"`
	TotalPrice    models.Money `json:"total_price"`
}

// CartService owns the per-user cart. A cart comes into existence on the
// first add and only then; reads against a user who never added anything
// report not-found rather than conjuring an empty cart.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Detail returns the user's cart with per-line charged prices and totals.
func (s *CartService) Detail(userID uint) (*CartDetail, error) {
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
	return s.buildDetail(cart.ID)
}

// AddProduct puts one unit of the product into the user's cart, creating
// the cart on first use. Adding an already-present product increments its
// line; the insert-or-increment runs as a single upsert statement. There is
// no stock check here.
func (s *CartService) AddProduct(userID, productID uint) (*CartDetail, error) {
	if userID == 0 || productID == 0 {
		return nil, ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}

	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.AddOne(cart.ID, productID); err != nil {
		return nil, err
	}
	return s.buildDetail(cart.ID)
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line,
// matching what a storefront quantity box submits.
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) (*CartDetail, error) {
	cart, item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(item.ID); err != nil {
			return nil, err
		}
	} else if err := s.cartRepo.UpdateItemQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	return s.buildDetail(cart.ID)
}

// RemoveItem deletes a line from the user's cart.
func (s *CartService) RemoveItem(userID, itemID uint) (*CartDetail, error) {
	cart, item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.DeleteItem(item.ID); err != nil {
		return nil, err
	}
	return s.buildDetail(cart.ID)
}

// ownedItem resolves an item strictly through the caller's own cart, so a
// guessed item ID belonging to someone else reads as not-found.
func (s *CartService) ownedItem(userID, itemID uint) (*models.Cart, *models.CartItem, error) {
	if userID == 0 || itemID == 0 {
		return nil, nil, ErrInvalidInput
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	if cart == nil {
		return nil, nil, ErrCartNotFound
	}
	item, err := s.cartRepo.GetItemForCart(cart.ID, itemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, ErrCartItemNotFound
	}
	return cart, item, nil
}

func (s *CartService) buildDetail(cartID uint) (*CartDetail, error) {
	cart, err := s.cartRepo.GetDetail(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	detail := &CartDetail{
		CartID: cart.ID,
		Lines:  make([]CartLine, 0, len(cart.Items)),
	}
	total := decimal.Zero
	for _, item := range cart.Items {
		product := item.Product
		if product == nil || product.ID == 0 {
			// Stale line for a product that vanished under us; the
			// housekeeping worker will sweep it. Skip it here.
			continue
		}
		unit := EffectiveUnitPrice(product)
		lineTotal := LineTotal(product, item.Quantity)
		detail.Lines = append(detail.Lines, CartLine{
			ItemID:     item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  unit,
			ListPrice:  product.Price,
			LineTotal:  lineTotal,
			Discounted: product.Category == constants.CategoryStarterSet,
			Product:    product,
		})
		detail.TotalQuantity += item.Quantity
		total = total.Add(lineTotal.Decimal)
	}
	detail.TotalPrice = models.NewMoneyFromDecimal(total)
	return detail, nil
}
