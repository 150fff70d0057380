package api

import (
	"easyshop/internal/domain" // Importing domain models
	"easyshop/internal/utils"  // Utility functions
	"errors"                   // Sentinel error comparisons
	"net/http"                 // HTTP status codes
	"time"                     // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

const (
	categoriesCacheKey = "categories:all" // Cache key for the full category list
	catalogCacheTTL    = 60 * time.Second // TTL for catalog read caches
)

// categoryProductsCacheKey builds the cache key for one category's product list
func categoryProductsCacheKey(id string) string {
	return "category:" + id + ":products"
}

// CategoryRequest is the write payload for category create/update
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"` // Category name
	Description string `json:"description"`             // Category description
}

// GetCategoriesHandler returns all categories, served from cache when possible
func GetCategoriesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		categories := []domain.Category{} // Empty slice, never null, when no rows match
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, categoriesCacheKey, &categories)
		if err == nil && found {
			c.JSON(http.StatusOK, categories)
			return
		}
		if err := db.Find(&categories).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch categories")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		_ = utils.SetCache(ctx, rdb, categoriesCacheKey, categories, catalogCacheTTL) // Cache the list
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryHandler returns a single category by id
func GetCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category domain.Category // Fetch category from database
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to fetch category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// GetCategoryProductsHandler returns all products in one category
func GetCategoryProductsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("id")
		// The category itself must exist, even when it has no products
		var category domain.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to fetch category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}
		products := []domain.Product{} // Empty slice, never null, when no rows match
		cacheKey := categoryProductsCacheKey(id)
		found, err := utils.GetCache(ctx, rdb, cacheKey, &products)
		if err == nil && found {
			c.JSON(http.StatusOK, products)
			return
		}
		if err := db.Where("category_id = ?", category.ID).Find(&products).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch category products")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, products, catalogCacheTTL) // Cache the list
		c.JSON(http.StatusOK, products)
	}
}

// CreateCategoryHandler creates a category (admin only)
func CreateCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		category := domain.Category{Name: req.Name, Description: req.Description}
		if err := db.Create(&category).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to create category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		// Invalidate the category list cache
		_ = utils.DeleteCache(c.Request.Context(), rdb, categoriesCacheKey)
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategoryHandler updates a category (admin only)
func UpdateCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var category domain.Category // Fetch existing category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to fetch category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}
		category.Name = req.Name               // Replace name
		category.Description = req.Description // Replace description
		if err := db.Save(&category).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to update category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		// Invalidate caches touching this category
		_ = utils.DeleteCache(c.Request.Context(), rdb, categoriesCacheKey, categoryProductsCacheKey(c.Param("id")))
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategoryHandler deletes a category (admin only)
func DeleteCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category domain.Category // Fetch existing category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to fetch category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}
		if err := db.Delete(&category).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to delete category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		// Invalidate caches touching this category
		_ = utils.DeleteCache(c.Request.Context(), rdb, categoriesCacheKey, categoryProductsCacheKey(c.Param("id")))
		c.Status(http.StatusNoContent)
	}
}
