package repository

import (
	"errors"

	"github.com/forgehall/forgehall/internal/models"

	"gorm.io/gorm"
)

// FactionRepository is the faction data access interface.
type FactionRepository interface {
	List() ([]models.Faction, error)
	GetByID(id uint) (*models.Faction, error)
	GetByName(name string) (*models.Faction, error)
	Create(faction *models.Faction) error
	Update(faction *models.Faction) error
	Delete(id uint) error
	CountProducts(id uint) (int64, error)
	WithTx(tx *gorm.DB) FactionRepository
}

// GormFactionRepository is the GORM implementation.
type GormFactionRepository struct {
	db *gorm.DB
}

// NewFactionRepository creates a faction repository.
func NewFactionRepository(db *gorm.DB) *GormFactionRepository {
	return &GormFactionRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormFactionRepository) WithTx(tx *gorm.DB) FactionRepository {
	if tx == nil {
		return r
	}
	return &GormFactionRepository{db: tx}
}

// List returns every faction in display order.
func (r *GormFactionRepository) List() ([]models.Faction, error) {
	var factions []models.Faction
	if err := r.db.Order("sort_order DESC, name ASC").Find(&factions).Error; err != nil {
		return nil, err
	}
	return factions, nil
}

// GetByID fetches one faction; returns (nil, nil) when absent.
func (r *GormFactionRepository) GetByID(id uint) (*models.Faction, error) {
	var faction models.Faction
	if err := r.db.First(&faction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faction, nil
}

// GetByName fetches one faction by its unique name.
func (r *GormFactionRepository) GetByName(name string) (*models.Faction, error) {
	var faction models.Faction
	if err := r.db.Where("name = ?", name).First(&faction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faction, nil
}

// Create inserts a faction.
func (r *GormFactionRepository) Create(faction *models.Faction) error {
	return r.db.Create(faction).Error
}

// Update saves a faction.
func (r *GormFactionRepository) Update(faction *models.Faction) error {
	return r.db.Save(faction).Error
}

// Delete soft-deletes a faction.
func (r *GormFactionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Faction{}, id).Error
}

// CountProducts counts live products still attached to the faction.
func (r *GormFactionRepository) CountProducts(id uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("faction_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
