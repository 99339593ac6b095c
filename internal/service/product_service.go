package service

import (
	"strings"
	"time"

	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/logger"
	"github.com/forgehall/forgehall/internal/models"
	"github.com/forgehall/forgehall/internal/queue"
	"github.com/forgehall/forgehall/internal/repository"
)

// ProductInput carries admin-supplied product fields. Price arrives as a
// string so the decimal survives the JSON round trip untouched.
type ProductInput struct {
	FactionID   *uint      `json:"faction_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Price       string     `json:"price"`
	Stock       int        `json:"stock"`
	IsPreorder  bool       `json:"is_preorder"`
	ReleaseDate *time.Time `json:"release_date"`
	ImageURL    string     `json:"image_url"`
	IsActive    *bool      `json:"is_active"`
	SortOrder   int        `json:"sort_order"`
}

// ProductService maintains the product catalog for the admin surface.
type ProductService struct {
	productRepo repository.ProductRepository
	factionRepo repository.FactionRepository
	queueClient *queue.Client
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, factionRepo repository.FactionRepository, queueClient *queue.Client) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		factionRepo: factionRepo,
		queueClient: queueClient,
	}
}

// List returns products for the admin table, inactive ones included.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.WithFaction = true
	return s.productRepo.List(filter)
}

// Get returns one product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a product.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	product := &models.Product{IsActive: true}
	if err := s.applyInput(product, input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update rewrites a product's fields.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyInput(product, input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product and schedules the purge of cart lines that
// still point at it. The purge is best-effort; the worker's periodic sweep
// catches anything the enqueue misses.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	if err := s.queueClient.EnqueueCartPurgeProduct(queue.CartPurgeProductPayload{ProductID: id}); err != nil {
		logger.Warnw("cart_purge_enqueue_failed", "product_id", id, "error", err)
	}
	return nil
}

func (s *ProductService) applyInput(product *models.Product, input ProductInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrInvalidInput
	}
	category := strings.TrimSpace(input.Category)
	if !constants.IsProductCategory(category) {
		return ErrInvalidCategory
	}
	price, err := models.NewMoneyFromString(strings.TrimSpace(input.Price))
	if err != nil || price.IsNegative() {
		return ErrInvalidPrice
	}
	if input.Stock < 0 {
		return ErrInvalidInput
	}
	if input.FactionID != nil {
		faction, err := s.factionRepo.GetByID(*input.FactionID)
		if err != nil {
			return err
		}
		if faction == nil {
			return ErrFactionNotFound
		}
	}

	product.FactionID = input.FactionID
	product.Name = name
	product.Description = strings.TrimSpace(input.Description)
	product.Category = category
	product.Price = price
	product.Stock = input.Stock
	product.IsPreorder = input.IsPreorder
	product.ReleaseDate = input.ReleaseDate
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	product.SortOrder = input.SortOrder
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	return nil
}
