package api

import (
	"easyshop/internal/middleware" // Auth and rate limit middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter wires every route onto a gin engine. rdb may be nil, which
// disables caching and rate limiting.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Auth routes, rate limited per client IP
	r.POST("/register", middleware.RateLimiter(rdb), RegisterHandler(db))
	r.POST("/login", middleware.RateLimiter(rdb), LoginHandler(db, jwtSecret))

	// Public catalog reads
	r.GET("/categories", GetCategoriesHandler(db, rdb))
	r.GET("/categories/:id", GetCategoryHandler(db))
	r.GET("/categories/:id/products", GetCategoryProductsHandler(db, rdb))
	r.GET("/products", ListProductsHandler(db))
	r.GET("/products/:id", GetProductHandler(db, rdb))

	// Cart routes, scoped to the caller's own cart (protected by JWT)
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.JWTAuthMiddleware(jwtSecret))
	cartGroup.GET("", GetCartHandler(db))                                // Read cart endpoint
	cartGroup.POST("/products/:productId", AddToCartHandler(db))         // Add product endpoint
	cartGroup.PUT("/products/:productId", UpdateCartItemHandler(db))     // Set quantity endpoint
	cartGroup.DELETE("/products/:productId", RemoveFromCartHandler(db))  // Remove product endpoint
	cartGroup.DELETE("", ClearCartHandler(db))                           // Clear cart endpoint

	// Checkout and profile (protected by JWT)
	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(jwtSecret))
	authGroup.POST("/orders", CheckoutHandler(db))      // Checkout endpoint
	authGroup.GET("/profile", GetProfileHandler(db))    // Read profile endpoint
	authGroup.PUT("/profile", UpdateProfileHandler(db)) // Update profile endpoint

	// Admin catalog writes (protected, admin only)
	adminGroup := r.Group("/")
	adminGroup.Use(middleware.JWTAuthMiddleware(jwtSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.POST("/categories", CreateCategoryHandler(db, rdb))       // Create category endpoint
	adminGroup.PUT("/categories/:id", UpdateCategoryHandler(db, rdb))    // Update category endpoint
	adminGroup.DELETE("/categories/:id", DeleteCategoryHandler(db, rdb)) // Delete category endpoint
	adminGroup.POST("/products", CreateProductHandler(db, rdb))          // Create product endpoint
	adminGroup.PUT("/products/:id", UpdateProductHandler(db, rdb))       // Update product endpoint
	adminGroup.DELETE("/products/:id", DeleteProductHandler(db, rdb))    // Delete product endpoint

	return r
}
