package routes

import (
	"context"

	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) error {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories / services
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)

	authSvc := services.NewAuthService(userRepo, cfg)
	cartSvc := services.NewCartService(db, cartRepo)
	uploadSvc, err := services.NewUploadService(context.Background(), cfg)
	if err != nil {
		return err
	}

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg)
	categoryCtrl := controllers.NewCategoryController(db)
	productCtrl := controllers.NewProductController(db)
	cartCtrl := controllers.NewCartController(cartSvc)
	uploadCtrl := controllers.NewUploadController(uploadSvc)

	admin := middlewares.Auth(cfg, entity.RoleAdmin)

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/refresh", authCtrl.Refresh)
		a.POST("/logout", authCtrl.Logout)
	}

	// Categories (reads public, writes admin)
	cat := api.Group("/category")
	{
		cat.GET("/get", categoryCtrl.List)
		cat.POST("/create", admin, categoryCtrl.Create)
		cat.PATCH("/update", admin, categoryCtrl.Update)
		cat.DELETE("/delete/:id", admin, categoryCtrl.Delete)
	}

	// Products (reads public, writes admin)
	p := api.Group("/product")
	{
		p.GET("/get", productCtrl.List)
		p.GET("/get/:id", productCtrl.Get)
		p.POST("/create", admin, productCtrl.Create)
		p.PATCH("/update", admin, productCtrl.Update)
		p.DELETE("/delete/:id", admin, productCtrl.Delete)
	}

	// Uploads (admin)
	api.POST("/upload/putobj-urls", admin, uploadCtrl.PutObjectURLs)

	// Cart: guest or logged-in, identified by AuthAndSession
	cart := api.Group("/cart", middlewares.AuthAndSession(cfg))
	{
		cart.POST("/add", cartCtrl.Add)
		cart.DELETE("/remove/:cartItemId", cartCtrl.Remove)
		cart.GET("/get", cartCtrl.Get)
		cart.PATCH("/manage-cart-quantity", cartCtrl.ManageQuantity)
		cart.PATCH("/merge-cart", cartCtrl.Merge)
	}

	return nil
}
