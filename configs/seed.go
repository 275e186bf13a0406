package configs

import (
	"log"
	"time"

	"github.com/g-anupam/next-delivery/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemo fills an empty database with a couple of restaurants, menus and a
// coupon so the app is usable right after first boot.
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	owner1 := entity.User{Email: "spice@quickbite.local", Password: string(hash), Name: "Spice Route", Role: entity.RoleRestaurant}
	owner2 := entity.User{Email: "wok@quickbite.local", Password: string(hash), Name: "Wok This Way", Role: entity.RoleRestaurant}
	if err := db.Create(&owner1).Error; err != nil {
		return err
	}
	if err := db.Create(&owner2).Error; err != nil {
		return err
	}

	r1 := entity.Restaurant{Name: "Spice Route", Address: "12 MG Road", Cuisine: "North Indian", UserID: owner1.ID}
	r2 := entity.Restaurant{Name: "Wok This Way", Address: "4 Brigade Road", Cuisine: "Chinese", UserID: owner2.ID}
	if err := db.Create(&r1).Error; err != nil {
		return err
	}
	if err := db.Create(&r2).Error; err != nil {
		return err
	}

	menus := []entity.MenuItem{
		{Name: "Butter Chicken", Description: "With naan", Price: 10.99, RestaurantID: r1.ID},
		{Name: "Dal Makhani", Description: "Slow cooked", Price: 6.00, RestaurantID: r1.ID},
		{Name: "Paneer Tikka", Description: "Charred", Price: 7.50, RestaurantID: r1.ID},
		{Name: "Hakka Noodles", Description: "Veg", Price: 5.25, RestaurantID: r2.ID},
		{Name: "Kung Pao Chicken", Description: "Spicy", Price: 9.75, RestaurantID: r2.ID},
	}
	if err := db.Create(&menus).Error; err != nil {
		return err
	}

	expiry := time.Now().AddDate(0, 3, 0)
	coupon := entity.Coupon{DiscountPercent: 10, Expiry: &expiry, RestaurantID: r1.ID}
	if err := db.Create(&coupon).Error; err != nil {
		return err
	}

	log.Println("demo data seeded")
	return nil
}
