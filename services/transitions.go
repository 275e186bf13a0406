package services

import (
	"errors"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"

	"gorm.io/gorm"
)

// restaurantNext is the restaurant-side slice of the lifecycle. Driver steps
// (claim, deliver) live in DriverService; Delivered is terminal.
var restaurantNext = map[string]string{
	entity.StatusPlaced:    entity.StatusAccepted,
	entity.StatusAccepted:  entity.StatusPreparing,
	entity.StatusPreparing: entity.StatusReadyForPickup,
}

type TransitionService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	Notifier StatusNotifier
}

func NewTransitionService(db *gorm.DB, repo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *TransitionService {
	return &TransitionService{DB: db, Repo: repo, RestRepo: restRepo}
}

// Advance applies a restaurant-requested status change. Ownership and
// legality are checked first; the write itself is a guarded conditional
// update, so a raced order is left untouched and reported as invalid.
func (s *TransitionService) Advance(ownerUserID, orderID uint, newStatus string) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerUserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}

	if restaurantNext[o.Status] != newStatus {
		return ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(o.ID, newStatus)
	}
	return nil
}

func (s *TransitionService) ListForRestaurant(ownerUserID uint, status string, limit int) ([]repository.RestaurantOrderSummary, error) {
	rest, err := s.RestRepo.FindByUserID(ownerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListOrdersForRestaurant(rest.ID, status, limit)
}

type RestaurantOrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *TransitionService) DetailForRestaurant(ownerUserID, orderID uint) (*RestaurantOrderDetail, error) {
	rest, err := s.RestRepo.FindByUserID(ownerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	o, err := s.Repo.GetOrderForRestaurant(rest.ID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &RestaurantOrderDetail{Order: *o, Items: items}, nil
}
