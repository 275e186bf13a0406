package routes

import (
	"github.com/g-anupam/next-delivery/configs"
	"github.com/g-anupam/next-delivery/controllers"
	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/middlewares"
	"github.com/g-anupam/next-delivery/repository"
	"github.com/g-anupam/next-delivery/services"
	"github.com/g-anupam/next-delivery/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Live status feed
	hub := ws.NewOrderHub(orderRepo)
	go hub.Run()

	// Services
	carts := services.NewCartStore()
	pricing := services.NewPricingService(menuRepo, couponRepo, cfg.DeliveryFee, cfg.PlatformFee)
	orderSvc := services.NewOrderService(db, orderRepo, addressRepo, pricing, carts)
	orderSvc.Notifier = hub
	transitionSvc := services.NewTransitionService(db, orderRepo, restRepo)
	transitionSvc.Notifier = hub
	driverSvc := services.NewDriverService(db, orderRepo, userRepo)
	driverSvc.Notifier = hub
	couponSvc := services.NewCouponService(couponRepo, restRepo)
	restSvc := services.NewRestaurantService(restRepo, menuRepo, orderRepo)
	ratingSvc := services.NewRatingService(ratingRepo, orderRepo)
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(carts, menuRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, couponSvc)
	ownerCtrl := controllers.NewOwnerController(transitionSvc, couponSvc, restSvc)
	driverCtrl := controllers.NewDriverController(driverSvc)
	ratingCtrl := controllers.NewRatingController(ratingSvc)
	addressCtrl := controllers.NewAddressController(addressRepo)

	// Auth (public)
	r.POST("/signup", authCtrl.Signup)
	r.POST("/login", authCtrl.Login)
	r.POST("/logout", authCtrl.Logout)
	r.GET("/me", middlewares.AuthMiddleware(), authCtrl.Me)

	// Public browse
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)
	r.GET("/restaurants/:id/coupons", restCtrl.PublicCoupons)

	// Customer
	users := r.Group("/users", middlewares.AuthMiddleware(entity.RoleCustomer))
	{
		users.GET("/cart", cartCtrl.Get)
		users.POST("/cart/items", cartCtrl.AddItem)
		users.POST("/cart/resolve", cartCtrl.ResolveConflict)
		users.POST("/cart/items/:id/decrement", cartCtrl.DecrementItem)
		users.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		users.DELETE("/cart", cartCtrl.Clear)

		users.GET("/addresses", addressCtrl.List)
		users.POST("/addresses", addressCtrl.Create)

		users.POST("/order", orderCtrl.Place)
		users.GET("/orders", orderCtrl.ListForMe)
		users.GET("/orders/:id", orderCtrl.Detail)

		users.POST("/rating", ratingCtrl.Rate)
		users.GET("/rating/:orderId", ratingCtrl.GetForOrder)
	}

	// Restaurant owner
	owner := r.Group("/restaurant", middlewares.AuthMiddleware(entity.RoleRestaurant))
	{
		owner.GET("/orders", ownerCtrl.Orders)
		owner.GET("/orders/:id", ownerCtrl.OrderDetail)
		owner.PUT("/orders/:id/status", ownerCtrl.UpdateStatus)

		owner.GET("/coupons", ownerCtrl.ListCoupons)
		owner.POST("/coupons", ownerCtrl.CreateCoupon)
		owner.DELETE("/coupons/:id", ownerCtrl.DeleteCoupon)

		owner.GET("/menu", ownerCtrl.Menu)
		owner.POST("/menu", ownerCtrl.CreateMenuItem)

		owner.GET("/earnings", ownerCtrl.Earnings)
	}

	// Driver
	driver := r.Group("/driver", middlewares.AuthMiddleware(entity.RoleDriver))
	{
		driver.GET("/available-orders", driverCtrl.AvailableOrders)
		driver.POST("/accept-order", driverCtrl.AcceptOrder)
		driver.POST("/deliver-order", driverCtrl.DeliverOrder)
		driver.GET("/current-order", driverCtrl.CurrentOrder)
		driver.GET("/earnings", driverCtrl.Earnings)
		driver.GET("/deliveries-today", driverCtrl.DeliveriesToday)
	}

	// Live order tracking
	r.GET("/ws/orders/:id", middlewares.AuthMiddleware(), hub.HandleWebSocket)
}
