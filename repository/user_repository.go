package repository

import (
	"github.com/g-anupam/next-delivery/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) CreateRestaurant(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *UserRepository) CreateDriver(tx *gorm.DB, d *entity.Driver) error {
	return tx.Create(d).Error
}

func (r *UserRepository) FindDriverByUserID(userID uint) (*entity.Driver, error) {
	var d entity.Driver
	if err := r.DB.Where("user_id = ?", userID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
