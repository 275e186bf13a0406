package repository

import (
	"github.com/g-anupam/next-delivery/entity"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) ExistsForOrder(orderID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Rating{}).
		Where("order_id = ? AND user_id = ?", orderID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *RatingRepository) Create(rt *entity.Rating) error {
	return r.DB.Create(rt).Error
}

func (r *RatingRepository) GetForOrder(orderID, userID uint) (*entity.Rating, error) {
	var rt entity.Rating
	err := r.DB.Where("order_id = ? AND user_id = ?", orderID, userID).First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}
