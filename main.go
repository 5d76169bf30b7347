package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sathish19189/Ecommerce-project/config"
	"github.com/sathish19189/Ecommerce-project/handlers"
	"github.com/sathish19189/Ecommerce-project/middleware"
	"github.com/sathish19189/Ecommerce-project/models"
	"github.com/sathish19189/Ecommerce-project/service"
	"github.com/sathish19189/Ecommerce-project/store"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	gin.SetMode(cfg.GinMode)

	// Stores
	catalog := store.NewCatalog()
	seedCatalog(catalog)
	credentials := store.NewCredentials()
	sessions := store.NewSessions()
	orders := store.NewOrderLog()

	// Services
	cartService := service.NewCart(catalog, sessions)
	checkoutService := service.NewCheckout(catalog, sessions, orders)

	// Handlers
	authHandler := handlers.NewAuth(credentials, sessions, log)
	productHandler := handlers.NewProducts(catalog)
	cartHandler := handlers.NewCart(cartService)
	checkoutHandler := handlers.NewCheckout(checkoutService, log)
	adminHandler := handlers.NewAdmin(catalog, orders, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Session(sessions, cfg.JWTSecret))

	r.GET("/health-check", handlers.Health)

	// Public routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/products", productHandler.List)
	r.GET("/products/:id", productHandler.Get)

	// Cart routes (session-scoped, no login needed)
	r.GET("/cart", cartHandler.Get)
	r.POST("/cart/items", cartHandler.AddItem)
	r.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	r.DELETE("/cart", cartHandler.Clear)

	// Checkout requires an authenticated session
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/checkout", checkoutHandler.Submit)
	}

	// Admin-only routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/products", adminHandler.ListProducts)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		admin.GET("/orders", adminHandler.ListOrders)
	}

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// seedCatalog loads the starter catalog so a fresh process has something to
// sell.
func seedCatalog(catalog *store.Catalog) {
	seed := []models.ProductInput{
		{
			Name:        "Classic Cotton T-Shirt",
			Category:    models.CategoryMens,
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
			Description: "Comfortable cotton t-shirt perfect for everyday wear",
		},
		{
			Name:        "Slim Fit Jeans",
			Category:    models.CategoryMens,
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400",
			Description: "Modern slim fit denim jeans",
		},
		{
			Name:        "Casual Button Shirt",
			Category:    models.CategoryMens,
			Price:       49.99,
			Image:       "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400",
			Description: "Versatile button-down shirt for any occasion",
		},
		{
			Name:        "Summer Floral Dress",
			Category:    models.CategoryWomens,
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=400",
			Description: "Beautiful floral dress perfect for summer",
		},
		{
			Name:        "Elegant Blouse",
			Category:    models.CategoryWomens,
			Price:       59.99,
			Image:       "https://images.unsplash.com/photo-1564257631407-2bb59f8e0b81?w=400",
			Description: "Sophisticated blouse for professional settings",
		},
		{
			Name:        "High-Waist Trousers",
			Category:    models.CategoryWomens,
			Price:       69.99,
			Image:       "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400",
			Description: "Stylish high-waist trousers",
		},
	}
	for _, input := range seed {
		catalog.Create(input)
	}
}
