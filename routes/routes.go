package routes

import (
	"menudia/configs"
	"menudia/controllers"
	"menudia/middlewares"
	"menudia/repository"
	"menudia/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	dishSvc := services.NewDishService(dishRepo)
	cartSvc := services.NewCartService(db, cartRepo, dishRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cfg.PaymentPhone)

	api := r.Group("/api", middlewares.MaintenanceMiddleware(cfg.Maintenance))

	// Auth (public)
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/verify-registration", authCtrl.VerifyRegistration)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/profile", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Profile)

	// Daily menu (public; creation is staff only)
	api.GET("/dishes", dishCtrl.List)
	api.GET("/dishes/:id", dishCtrl.Detail)
	api.POST("/dishes", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), dishCtrl.Create)

	// Cart is keyed by session so ordering works before login. Item
	// mutations live under /carts/:cartId to keep gin's route tree happy.
	cart := api.Group("/cart")
	{
		cart.POST("", cartCtrl.Create)
		cart.GET("/session/:sessionId", cartCtrl.GetBySession)
		cart.GET("/session/:sessionId/summary", cartCtrl.Summary)
	}
	carts := api.Group("/carts")
	{
		carts.POST("/:cartId/items", cartCtrl.AddItem)
		carts.PUT("/:cartId/items/:itemId", cartCtrl.UpdateItem)
		carts.DELETE("/:cartId/items/:itemId", cartCtrl.RemoveItem)
		carts.DELETE("/:cartId/clear", cartCtrl.Clear)
	}

	// Orders (require login)
	u := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/profile/orders", orderCtrl.ListForMe)
	}
}
