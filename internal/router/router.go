// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aleeffc/sunflowerbeach/internal/config"
	"github.com/Aleeffc/sunflowerbeach/internal/handlers"
	"github.com/Aleeffc/sunflowerbeach/internal/middleware"
	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/services"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
	"github.com/Aleeffc/sunflowerbeach/internal/utils"
)

func Initialize(st *store.Store, cfg *config.Config, gen services.Generator) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(st, cfg)
	catalogService := services.NewCatalogService(st)
	cartService := services.NewCartService(st, cfg)
	analyticsService := services.NewAnalyticsService(st, nil)
	stylistService := services.NewStylistService(st, gen, time.Duration(cfg.Stylist.RequestTimeout)*time.Second)
	adminService := services.NewAdminService(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	stylistHandler := handlers.NewStylistHandler(stylistService)
	adminHandler := handlers.NewAdminHandler(adminService, analyticsService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.Auth.JWTSecret)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/login/client", authHandler.ClientLogin)
			auth.POST("/register", authHandler.Register)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.GET("/mine", middleware.RequireCapability(models.CapabilityViewDashboard), productHandler.MyProducts)
				protected.POST("", middleware.RequireCapability(models.CapabilityPublishProducts), productHandler.CreateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired(), middleware.RequireCapability(models.CapabilityShop))
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
			cart.POST("/checkout", cartHandler.Checkout)
		}

		// Virtual stylist routes
		stylist := v1.Group("/stylist")
		stylist.Use(middleware.AuthRequired())
		{
			stylist.GET("/messages", stylistHandler.GetTranscript)
			stylist.POST("/messages", middleware.StylistRateLimit(), stylistHandler.SendMessage)
		}

		// Dashboard routes (admin and approved vendors)
		dashboard := v1.Group("/dashboard")
		dashboard.Use(middleware.AuthRequired(), middleware.RequireCapability(models.CapabilityViewDashboard))
		{
			dashboard.GET("/stats", adminHandler.GetStats)
			dashboard.GET("/transactions", adminHandler.GetTransactions)
			dashboard.GET("/vendors", middleware.RequireCapability(models.CapabilityViewAllReports), adminHandler.GetVendorReports)
		}

		// Public storefront customization
		v1.GET("/settings", adminHandler.GetSettings)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired())
		{
			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", middleware.RequireCapability(models.CapabilityListUsers), adminHandler.ListUsers)
				adminUsers.PUT("/:id/approve", middleware.RequireCapability(models.CapabilityApproveVendors), adminHandler.ApproveVendor)
				adminUsers.DELETE("/:id", middleware.RequireCapability(models.CapabilityDeleteUsers), adminHandler.DeleteUser)
			}

			adminSettings := admin.Group("/settings")
			adminSettings.Use(middleware.RequireCapability(models.CapabilityManageSettings))
			{
				adminSettings.PUT("", adminHandler.UpdateSettings)
			}
		}
	}

	return r
}
