package services

import (
	"errors"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"

	"gorm.io/gorm"
)

// DriverEarningShare is the driver's cut of a delivered order's payment.
const DriverEarningShare = 0.20

type DriverService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	UserRepo *repository.UserRepository
	Notifier StatusNotifier
}

func NewDriverService(db *gorm.DB, repo *repository.OrderRepository, userRepo *repository.UserRepository) *DriverService {
	return &DriverService{DB: db, Repo: repo, UserRepo: userRepo}
}

func (s *DriverService) driverFor(userID uint) (*entity.Driver, error) {
	d, err := s.UserRepo.FindDriverByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *DriverService) ListAvailable() ([]repository.AvailableOrderRow, error) {
	return s.Repo.ListAvailable(50)
}

// Claim assigns the order to the driver. The conditional UPDATE on
// (status = Ready for Pickup, driver_id IS NULL) is the only concurrency
// control: under concurrent claims exactly one caller sees RowsAffected = 1,
// everyone else gets ErrOrderClaimed.
func (s *DriverService) Claim(userID, orderID uint) error {
	d, err := s.driverFor(userID)
	if err != nil {
		return err
	}

	// One delivery at a time.
	if _, err := s.Repo.FindActiveForDriver(d.ID); err == nil {
		return ErrActiveDelivery
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		won, err := s.Repo.ClaimForDriver(tx, orderID, d.ID)
		if err != nil {
			return err
		}
		if !won {
			return ErrOrderClaimed
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(orderID, entity.StatusOutForDelivery)
	}
	return nil
}

// Complete marks the order Delivered. Only the assigned driver may finish it,
// and only from Out for Delivery.
func (s *DriverService) Complete(userID, orderID uint) error {
	d, err := s.driverFor(userID)
	if err != nil {
		return err
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if o.DriverID == nil || *o.DriverID != d.ID {
		return ErrForbidden
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.DeliverForDriver(tx, orderID, d.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(orderID, entity.StatusDelivered)
	}
	return nil
}

func (s *DriverService) CurrentOrder(userID uint) (*entity.Order, error) {
	d, err := s.driverFor(userID)
	if err != nil {
		return nil, err
	}
	o, err := s.Repo.FindActiveForDriver(d.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

type DriverEarnings struct {
	Lifetime float64 `json:"lifetime"`
	Today    float64 `json:"today"`
}

func (s *DriverService) Earnings(userID uint) (*DriverEarnings, error) {
	d, err := s.driverFor(userID)
	if err != nil {
		return nil, err
	}
	lifetime, err := s.Repo.SumPaymentsForDriver(d.ID, nil)
	if err != nil {
		return nil, err
	}
	midnight := today()
	todaySum, err := s.Repo.SumPaymentsForDriver(d.ID, &midnight)
	if err != nil {
		return nil, err
	}
	return &DriverEarnings{
		Lifetime: round2(lifetime * DriverEarningShare),
		Today:    round2(todaySum * DriverEarningShare),
	}, nil
}

func (s *DriverService) DeliveriesToday(userID uint) (int64, error) {
	d, err := s.driverFor(userID)
	if err != nil {
		return 0, err
	}
	midnight := today()
	return s.Repo.CountDeliveredForDriver(d.ID, &midnight)
}
