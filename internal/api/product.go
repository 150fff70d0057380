package api

import (
	"easyshop/internal/domain" // Importing domain models
	"easyshop/internal/utils"  // Utility functions
	"errors"                   // Sentinel error comparisons
	"net/http"                 // HTTP status codes
	"strconv"                  // String conversion

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// productCacheKey builds the cache key for a single product
func productCacheKey(id string) string {
	return "product:" + id
}

// ProductRequest is the write payload for product create/update
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`         // Product name
	Price       float64 `json:"price" binding:"required,gt=0"`   // Catalog price
	CategoryID  uint    `json:"category_id" binding:"required"`  // Owning category
	Description string  `json:"description"`                     // Product description
	Subcategory string  `json:"subcategory"`                     // Subcategory label
	Stock       int     `json:"stock" binding:"gte=0"`           // Units in stock
	Featured    bool    `json:"featured"`                        // Featured flag
	ImageURL    string  `json:"image_url"`                       // Product image URL
}

// ListProductsHandler returns products filtered by the optional category_id,
// min_price and max_price query parameters
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&domain.Product{}) // Start building the query
		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID) // Filter by category
		}
		if minPrice := c.Query("min_price"); minPrice != "" {
			if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
				query = query.Where("price >= ?", v) // Filter by minimum price
			}
		}
		if maxPrice := c.Query("max_price"); maxPrice != "" {
			if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				query = query.Where("price <= ?", v) // Filter by maximum price
			}
		}
		products := []domain.Product{} // Empty slice, never null, when no rows match
		if err := query.Find(&products).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch products")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductHandler returns a single product by id, served from cache when possible
func GetProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cacheKey := productCacheKey(c.Param("id"))
		var product domain.Product // Product struct to hold data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &product)
		if err == nil && found {
			c.JSON(http.StatusOK, product)
			return
		}
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, product, catalogCacheTTL) // Cache the product
		c.JSON(http.StatusOK, product)
	}
}

// CreateProductHandler creates a product (admin only)
func CreateProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		product := domain.Product{
			Name:        req.Name,        // Product name
			Price:       req.Price,       // Catalog price
			CategoryID:  req.CategoryID,  // Owning category
			Description: req.Description, // Product description
			Subcategory: req.Subcategory, // Subcategory label
			Stock:       req.Stock,       // Units in stock
			Featured:    req.Featured,    // Featured flag
			ImageURL:    req.ImageURL,    // Product image URL
		}
		if err := db.Create(&product).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to create product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		// Invalidate the owning category's product list
		_ = utils.DeleteCache(c.Request.Context(), rdb, categoryProductsCacheKey(strconv.Itoa(int(product.CategoryID))))
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProductHandler updates a product (admin only)
func UpdateProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var product domain.Product // Fetch existing product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		oldCategoryID := product.CategoryID // Category may change, invalidate both lists
		product.Name = req.Name
		product.Price = req.Price
		product.CategoryID = req.CategoryID
		product.Description = req.Description
		product.Subcategory = req.Subcategory
		product.Stock = req.Stock
		product.Featured = req.Featured
		product.ImageURL = req.ImageURL
		if err := db.Save(&product).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to update product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		_ = utils.DeleteCache(c.Request.Context(), rdb,
			productCacheKey(c.Param("id")),
			categoryProductsCacheKey(strconv.Itoa(int(oldCategoryID))),
			categoryProductsCacheKey(strconv.Itoa(int(product.CategoryID))))
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler deletes a product (admin only)
func DeleteProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product // Fetch existing product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		// Cart lines referencing the product go first; the shopping_cart
		// foreign key forbids orphans
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&domain.CartItem{}).Error; err != nil {
				return err // Return error to rollback
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to delete product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		_ = utils.DeleteCache(c.Request.Context(), rdb,
			productCacheKey(c.Param("id")),
			categoryProductsCacheKey(strconv.Itoa(int(product.CategoryID))))
		c.Status(http.StatusNoContent)
	}
}
