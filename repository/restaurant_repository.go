package repository

import (
	"github.com/g-anupam/next-delivery/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

type RestaurantRow struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Cuisine   string  `json:"cuisine"`
	AvgRating float64 `json:"avgRating"`
}

func (r *RestaurantRepository) List() ([]RestaurantRow, error) {
	var out []RestaurantRow
	err := r.DB.Table("restaurants AS r").
		Select("r.id, r.name, r.address, r.cuisine, COALESCE(AVG(rt.score), 0) AS avg_rating").
		Joins("LEFT JOIN ratings rt ON rt.restaurant_id = r.id AND rt.deleted_at IS NULL").
		Where("r.deleted_at IS NULL").
		Group("r.id").
		Order("r.id ASC").
		Scan(&out).Error
	return out, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByUserID(userID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("user_id = ?", userID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}
