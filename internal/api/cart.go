package api

import (
	"easyshop/internal/domain" // Importing domain models
	"errors"                   // Sentinel error comparisons
	"net/http"                 // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Upsert clause support
)

// QuantityRequest is the payload for replacing a cart line's quantity
type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"` // New quantity, must be >= 1
}

// loadCart reads the user's cart rows joined fresh against the catalog and
// builds the computed view. Runs against a transaction handle during checkout.
func loadCart(db *gorm.DB, userID uint) (domain.ShoppingCart, error) {
	var items []domain.CartItem
	err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error
	return domain.NewShoppingCart(items), err
}

// GetCartHandler returns the authenticated user's cart with computed totals
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		cart, err := loadCart(db, userID.(uint))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to fetch cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// AddToCartHandler adds one unit of a product to the cart. The insert and the
// repeat-add increment are a single upsert keyed on (user, product), so two
// simultaneous adds of the same product cannot lose an update.
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// The product must exist in the catalog
		var product domain.Product
		if err := db.First(&product, "id = ?", c.Param("productId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		// Insert with quantity 1, or increment the existing row in place
		item := domain.CartItem{UserID: userID.(uint), ProductID: product.ID, Quantity: 1}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("quantity + 1")}),
		}).Create(&item).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,      // User ID
				"product_id": product.ID,  // Product ID
				"error":      err.Error(), // Error message
			}).Error("Failed to add product to cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
			return
		}
		cart, err := loadCart(db, userID.(uint)) // Return the refreshed cart
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// UpdateCartItemHandler replaces the stored quantity of one cart line
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req QuantityRequest // Bind JSON request to struct
		// Quantity below 1 never reaches storage
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}
		// Fetch the line first: affected-row counts are not a reliable
		// existence signal (MySQL reports 0 when the quantity is unchanged)
		var item domain.CartItem
		if err := db.First(&item, "user_id = ? AND product_id = ?", userID, c.Param("productId")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not in cart"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to fetch cart item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		if err := db.Model(&item).Update("quantity", req.Quantity).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to update cart quantity")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		cart, err := loadCart(db, userID.(uint)) // Return the refreshed cart
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// RemoveFromCartHandler deletes one cart line; removing an absent line is a no-op
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := db.Where("user_id = ? AND product_id = ?", userID, c.Param("productId")).
			Delete(&domain.CartItem{}).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to remove product from cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove product from cart"})
			return
		}
		cart, err := loadCart(db, userID.(uint)) // Return the refreshed cart
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// ClearCartHandler removes every line from the user's cart; clearing an empty
// cart is a no-op, not an error
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := db.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to clear cart")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, domain.NewShoppingCart(nil)) // Empty cart view
	}
}
