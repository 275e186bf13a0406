package services

import (
	"errors"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"

	"gorm.io/gorm"
)

type RatingService struct {
	Repo      *repository.RatingRepository
	OrderRepo *repository.OrderRepository
}

func NewRatingService(repo *repository.RatingRepository, orderRepo *repository.OrderRepository) *RatingService {
	return &RatingService{Repo: repo, OrderRepo: orderRepo}
}

// Rate records a 1..5 score for the customer's own delivered order, at most
// once per order.
func (s *RatingService) Rate(userID, orderID uint, score int) (*entity.Rating, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidRating
	}

	o, err := s.OrderRepo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.Status != entity.StatusDelivered {
		return nil, ErrNotDelivered
	}

	exists, err := s.Repo.ExistsForOrder(orderID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRated
	}

	rt := &entity.Rating{
		Score:        score,
		OrderID:      orderID,
		UserID:       userID,
		RestaurantID: o.RestaurantID,
	}
	if err := s.Repo.Create(rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *RatingService) GetForOrder(userID, orderID uint) (*entity.Rating, error) {
	rt, err := s.Repo.GetForOrder(orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rt, nil
}
