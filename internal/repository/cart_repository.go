package repository

import (
	"errors"
	"time"

	"github.com/forgehall/forgehall/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	GetByUser(userID uint) (*models.Cart, error)
	GetOrCreateByUser(userID uint) (*models.Cart, error)
	GetDetail(cartID uint) (*models.Cart, error)
	AddOne(cartID, productID uint) error
	GetItemForCart(cartID, itemID uint) (*models.CartItem, error)
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(itemID uint) error
	DeleteItemsByProduct(productID uint) (int64, error)
	DeleteOrphanItems() (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByUser fetches a user's cart without creating one; (nil, nil) when the
// user never added anything.
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByUser fetches the user's cart, creating it on first use. The
// insert ignores the unique conflict so two concurrent first adds both end
// up on the same row.
func (r *GormCartRepository) GetOrCreateByUser(userID uint) (*models.Cart, error) {
	cart := models.Cart{UserID: userID}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error; err != nil {
		return nil, err
	}
	// The conflict path leaves cart.ID zero; re-read either way so the
	// caller always sees the persisted row.
	return r.GetByUser(userID)
}

// GetDetail fetches a cart with its lines and their products, newest line
// last.
func (r *GormCartRepository) GetDetail(cartID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Items.Product").
		First(&cart, cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// AddOne adds one unit of a product to the cart in a single statement:
// insert the line with quantity 1, or bump the existing line's quantity.
// The unique (cart_id, product_id) index makes the increment race-free.
func (r *GormCartRepository) AddOne(cartID, productID uint) error {
	now := time.Now()
	item := models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", 1),
			"updated_at": now,
		}),
	}).Create(&item).Error
}

// GetItemForCart fetches one line scoped to the given cart, so a caller can
// never touch another user's line by guessing IDs.
func (r *GormCartRepository) GetItemForCart(cartID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpdateItemQuantity sets a line's quantity.
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// DeleteItem removes a line.
func (r *GormCartRepository) DeleteItem(itemID uint) error {
	return r.db.Delete(&models.CartItem{}, itemID).Error
}

// DeleteItemsByProduct removes every cart line pointing at a product.
// Used when an admin deletes the product.
func (r *GormCartRepository) DeleteItemsByProduct(productID uint) (int64, error) {
	result := r.db.Where("product_id = ?", productID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteOrphanItems removes lines whose product has been soft-deleted or
// no longer exists. Run periodically by the worker as a safety net behind
// DeleteItemsByProduct.
func (r *GormCartRepository) DeleteOrphanItems() (int64, error) {
	result := r.db.
		Where("product_id NOT IN (?)",
			r.db.Model(&models.Product{}).Select("id")).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
