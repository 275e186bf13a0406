package repository

import (
	"github.com/g-anupam/next-delivery/entity"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) BelongsTo(addressID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Address{}).
		Where("id = ? AND user_id = ?", addressID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}
