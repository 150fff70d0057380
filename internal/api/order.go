package api

import (
	"easyshop/internal/domain" // Importing domain models
	"errors"                   // Sentinel error comparisons
	"net/http"                 // HTTP status codes
	"time"                     // Checkout timestamp

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Precondition failures inside the checkout transaction. They abort the
// transaction like any other error but map to 400, not 500.
var (
	errEmptyCart       = errors.New("cannot checkout with empty cart")
	errProfileNotFound = errors.New("user profile not found")
)

// CheckoutHandler converts the user's cart into an order. The cart read, the
// order and line item inserts and the cart clear all run inside one database
// transaction: either the whole checkout happens or none of it does.
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		uid := userID.(uint)
		var order domain.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			// Read the cart inside the transaction for a consistent view
			cart, err := loadCart(tx, uid)
			if err != nil {
				return err // Return error to rollback
			}
			if len(cart.Items) == 0 {
				return errEmptyCart // Nothing to order
			}
			// The profile supplies the shipping address snapshot
			var profile domain.Profile
			if err := tx.First(&profile, "user_id = ?", uid).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errProfileNotFound
				}
				return err // Return error to rollback
			}
			// Create the order with the address copied from the profile
			order = domain.Order{
				UserID:         uid,             // Ordering user
				Date:           time.Now(),      // Checkout timestamp
				Address:        profile.Address, // Shipping address snapshot
				City:           profile.City,    // Shipping city snapshot
				State:          profile.State,   // Shipping state snapshot
				Zip:            profile.Zip,     // Shipping zip snapshot
				ShippingAmount: 0,               // No shipping charge
			}
			if err := tx.Create(&order).Error; err != nil {
				return err // Return error to rollback
			}
			// One line item per distinct cart product, capturing the price
			// the user saw at checkout time
			lineItems := make([]domain.OrderLineItem, 0, len(cart.Items))
			for productID, item := range cart.Items {
				lineItems = append(lineItems, domain.OrderLineItem{
					OrderID:    order.ID,           // Generated order id
					ProductID:  productID,          // Ordered product
					SalesPrice: item.Product.Price, // Price at checkout time
					Discount:   0,                  // No discount
					Quantity:   item.Quantity,      // Cart quantity
				})
			}
			if err := tx.Create(&lineItems).Error; err != nil {
				return err // Return error to rollback
			}
			order.LineItems = lineItems
			// Clear the cart as part of the same transaction
			if err := tx.Where("user_id = ?", uid).Delete(&domain.CartItem{}).Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		// Precondition failures are the caller's to fix
		if errors.Is(err, errEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot checkout with empty cart"})
			return
		}
		if errors.Is(err, errProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User profile not found"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": uid,         // User ID
				"error":   err.Error(), // Error message
			}).Error("Checkout failed") // Log checkout failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}
		// Log successful checkout
		logrus.WithFields(logrus.Fields{
			"user_id":    uid,                             // User ID
			"order_id":   order.ID,                        // Generated order ID
			"line_items": len(order.LineItems),            // Number of line items
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Order created")
		c.JSON(http.StatusCreated, order) // Return the created order
	}
}
