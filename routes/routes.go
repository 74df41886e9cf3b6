package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phonkluver/forel-app-sub000/configs"
	"github.com/phonkluver/forel-app-sub000/controllers"
	"github.com/phonkluver/forel-app-sub000/middlewares"
	"github.com/phonkluver/forel-app-sub000/repository"
	"github.com/phonkluver/forel-app-sub000/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, notify services.Notifier) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// Repositories
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	resRepo := repository.NewReservationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	orderSvc := services.NewOrderService(orderRepo, menuRepo, notify, cfg.DeliveryFee)
	resSvc := services.NewReservationService(resRepo, notify)
	reviewSvc := services.NewReviewService(reviewRepo, notify)

	// Controllers
	authCtrl := controllers.NewAuthController(cfg)
	catCtrl := controllers.NewCategoryController(catRepo, cfg)
	menuCtrl := controllers.NewMenuController(menuRepo, catRepo, cfg)
	bannerCtrl := controllers.NewBannerController(bannerRepo, cfg)
	orderCtrl := controllers.NewOrderController(orderSvc, orderRepo)
	resCtrl := controllers.NewReservationController(resSvc, resRepo)
	reviewCtrl := controllers.NewReviewController(reviewSvc, reviewRepo)
	inquiryCtrl := controllers.NewInquiryController(notify)

	api := r.Group("/api")

	// Public reads
	api.GET("/categories", catCtrl.List)
	api.GET("/menu", menuCtrl.List)
	api.GET("/menu/category/:id", menuCtrl.ListByCategory)
	api.GET("/menu/item/:id", menuCtrl.Get)
	api.GET("/menu/item/:id/qr", menuCtrl.QR)
	api.GET("/banners/active", bannerCtrl.ListActive)
	api.GET("/reviews", reviewCtrl.List)

	// Public customer submissions; the server persists them and relays
	// the notification itself.
	api.POST("/orders", orderCtrl.Create)
	api.POST("/reservations", resCtrl.Create)
	api.POST("/reviews", reviewCtrl.Create)
	api.POST("/inquiries", inquiryCtrl.Create)

	// Auth
	api.POST("/auth/admin", authCtrl.AdminLogin)

	// Admin
	admin := api.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/categories", catCtrl.ListAll)
		admin.POST("/categories", catCtrl.Create)
		admin.PUT("/categories/:id", catCtrl.Update)
		admin.DELETE("/categories/:id", catCtrl.Delete)
		admin.PATCH("/categories/:id/toggle", catCtrl.Toggle)

		admin.GET("/menu", menuCtrl.ListAll)
		admin.POST("/menu", menuCtrl.Create)
		admin.PUT("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.PATCH("/menu/:id/toggle", menuCtrl.Toggle)

		admin.GET("/banners", bannerCtrl.ListAll)
		admin.POST("/banners", bannerCtrl.Create)
		admin.PUT("/banners/:id", bannerCtrl.Update)
		admin.DELETE("/banners/:id", bannerCtrl.Delete)
		admin.PATCH("/banners/:id/toggle", bannerCtrl.Toggle)

		admin.GET("/orders", orderCtrl.ListAll)
		admin.GET("/orders/:id", orderCtrl.Detail)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		admin.DELETE("/orders/:id", orderCtrl.Delete)

		admin.GET("/reservations", resCtrl.ListAll)
		admin.PATCH("/reservations/:id/status", resCtrl.UpdateStatus)
		admin.DELETE("/reservations/:id", resCtrl.Delete)

		admin.GET("/reviews", reviewCtrl.ListAll)
		admin.PATCH("/reviews/:id/approve", reviewCtrl.Approve)
		admin.DELETE("/reviews/:id", reviewCtrl.Delete)
	}
}
