package services

import (
	"errors"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"

	"gorm.io/gorm"
)

// RestaurantEarningShare is the restaurant's cut of an order payment after
// the platform takes its commission.
const RestaurantEarningShare = 0.80

type RestaurantService struct {
	Repo      *repository.RestaurantRepository
	MenuRepo  *repository.MenuRepository
	OrderRepo *repository.OrderRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository, menuRepo *repository.MenuRepository, orderRepo *repository.OrderRepository) *RestaurantService {
	return &RestaurantService{Repo: repo, MenuRepo: menuRepo, OrderRepo: orderRepo}
}

func (s *RestaurantService) List() ([]repository.RestaurantRow, error) {
	return s.Repo.List()
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Menu(restID uint) ([]entity.MenuItem, error) {
	if _, err := s.Detail(restID); err != nil {
		return nil, err
	}
	return s.MenuRepo.ListForRestaurant(restID)
}

func (s *RestaurantService) MenuForOwner(ownerUserID uint) ([]entity.MenuItem, error) {
	rest, err := s.Repo.FindByUserID(ownerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.MenuRepo.ListForRestaurant(rest.ID)
}

func (s *RestaurantService) AddMenuItem(ownerUserID uint, name, description string, price float64) (*entity.MenuItem, error) {
	rest, err := s.Repo.FindByUserID(ownerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	m := &entity.MenuItem{
		Name:         name,
		Description:  description,
		Price:        price,
		RestaurantID: rest.ID,
	}
	if err := s.MenuRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

type RestaurantEarnings struct {
	Lifetime float64 `json:"lifetime"`
	Today    float64 `json:"today"`
	Month    float64 `json:"month"`
}

func (s *RestaurantService) Earnings(ownerUserID uint) (*RestaurantEarnings, error) {
	rest, err := s.Repo.FindByUserID(ownerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	lifetime, err := s.OrderRepo.SumPaymentsForRestaurant(rest.ID, nil)
	if err != nil {
		return nil, err
	}
	midnight := today()
	todaySum, err := s.OrderRepo.SumPaymentsForRestaurant(rest.ID, &midnight)
	if err != nil {
		return nil, err
	}
	firstOfMonth := monthStart()
	monthSum, err := s.OrderRepo.SumPaymentsForRestaurant(rest.ID, &firstOfMonth)
	if err != nil {
		return nil, err
	}
	return &RestaurantEarnings{
		Lifetime: round2(lifetime * RestaurantEarningShare),
		Today:    round2(todaySum * RestaurantEarningShare),
		Month:    round2(monthSum * RestaurantEarningShare),
	}, nil
}
