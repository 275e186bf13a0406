package services

import (
	"strings"
	"time"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"
	"github.com/g-anupam/next-delivery/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles signup and login.
type AuthService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, UserRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=customer restaurant driver"`

	// restaurant signup
	RestaurantName    string `json:"restaurantName"`
	RestaurantAddress string `json:"restaurantAddress"`
	Cuisine           string `json:"cuisine"`

	// driver signup
	VehicleNo string `json:"vehicleNo"`
}

// Register creates the user and, in the same transaction, the role-specific
// profile row (restaurant or driver).
func (s *AuthService) Register(req *SignupReq) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Role:     req.Role,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.Create(tx, user); err != nil {
			return err
		}
		switch req.Role {
		case entity.RoleRestaurant:
			rest := &entity.Restaurant{
				Name:    strings.TrimSpace(req.RestaurantName),
				Address: strings.TrimSpace(req.RestaurantAddress),
				Cuisine: strings.TrimSpace(req.Cuisine),
				UserID:  user.ID,
			}
			return s.UserRepo.CreateRestaurant(tx, rest)
		case entity.RoleDriver:
			d := &entity.Driver{
				VehicleNo: strings.TrimSpace(req.VehicleNo),
				UserID:    user.ID,
			}
			return s.UserRepo.CreateDriver(tx, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a JWT carrying {userId, role}.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	return s.UserRepo.FindByID(userID)
}
