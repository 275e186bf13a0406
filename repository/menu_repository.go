package repository

import (
	"github.com/g-anupam/next-delivery/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListForRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restID).Order("id ASC").Find(&items).Error
	return items, err
}

// GetBasics fetches id, price and restaurant for a set of menu item ids.
// Missing ids simply produce fewer rows; callers compare lengths.
func (r *MenuRepository) GetBasics(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Select("id, name, price, restaurant_id").
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, name, price, restaurant_id").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}
