package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trendora-shop/storefront-backend/internal/dashboard"
	"github.com/trendora-shop/storefront-backend/internal/middleware"
	"github.com/trendora-shop/storefront-backend/internal/models"
)

var validate = validator.New()

func SetupRoutes(router *gin.Engine, db *mongo.Database, store *dashboard.Store, logger *logrus.Logger) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Server is running!",
			"status":  "ok",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "storefront-backend",
		})
	})

	authHandler := NewAuthHandler(db)
	productHandler := NewProductHandler(db)
	categoryHandler := NewCategoryHandler(db)
	orderHandler := NewOrderHandler(db)
	analyticsHandler := NewAnalyticsHandler(db, logger)
	userHandler := NewUserHandler(db)
	paymentHandler := NewPaymentHandler(db)
	dashboardHandler := NewDashboardHandler(store)

	// Public Routes
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	publicProducts := router.Group("/api/v1/public/products")
	{
		publicProducts.GET("", productHandler.ListProducts)
		publicProducts.GET("/:id", productHandler.GetProduct)
	}

	router.GET("/api/v1/categories", categoryHandler.ListCategories)

	// Stripe calls this directly, so it sits outside the auth middleware.
	router.POST("/api/v1/payments/webhook", paymentHandler.HandleWebhook)

	// Protected Routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/users/profile", authHandler.GetProfile)
		protected.GET("/orders/mine", orderHandler.GetUserOrders)
		protected.POST("/payments/create-intent", paymentHandler.CreatePaymentIntent)

		admin := protected.Group("")
		admin.Use(middleware.RoleMiddleware(models.RoleAdmin))
		{
			products := admin.Group("/products")
			{
				products.POST("", productHandler.CreateProduct)
				products.POST("/describe", productHandler.DescribeProduct)
				products.PUT("/:id/quantity", productHandler.UpdateQuantity)
				products.PUT("/:id/discount", productHandler.UpdateDiscount)
				products.PUT("/:id/price", productHandler.UpdatePrice)
				products.PUT("/:id/bestseller", productHandler.UpdateBestseller)
				products.DELETE("/:id", productHandler.DeleteProduct)
			}

			admin.POST("/categories", categoryHandler.CreateCategory)

			orders := admin.Group("/orders")
			{
				orders.GET("", orderHandler.GetAllOrders)
				orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
				orders.POST("/import", orderHandler.ImportOrders)
				orders.POST("/import/workbook", orderHandler.ImportOrdersWorkbook)
			}

			analytics := admin.Group("/analytics")
			{
				analytics.GET("/orders", analyticsHandler.GetOrderAnalytics)
				analytics.GET("/orders/export", analyticsHandler.ExportOrderAnalytics)
			}

			users := admin.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.PUT("/:id/role", userHandler.UpdateUserRole)
			}

			cards := admin.Group("/dashboard/cards")
			{
				cards.GET("", dashboardHandler.ListCards)
				cards.POST("", dashboardHandler.AddCard)
				cards.PUT("/:id", dashboardHandler.UpdateCard)
				cards.DELETE("/:id", dashboardHandler.RemoveCard)
			}
		}
	}
}
