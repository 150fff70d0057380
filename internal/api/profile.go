package api

import (
	"easyshop/internal/domain" // Importing domain models
	"errors"                   // Sentinel error comparisons
	"net/http"                 // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ProfileRequest is the write payload for profile updates
type ProfileRequest struct {
	FirstName string `json:"first_name"` // First name
	LastName  string `json:"last_name"`  // Last name
	Phone     string `json:"phone"`      // Contact phone number
	Email     string `json:"email"`      // Contact email
	Address   string `json:"address"`    // Street address
	City      string `json:"city"`       // City
	State     string `json:"state"`      // State
	Zip       string `json:"zip"`        // Zip code
}

// GetProfileHandler returns the authenticated user's own profile
func GetProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var profile domain.Profile // Fetch profile from database
		if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to fetch profile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler replaces the authenticated user's own profile fields
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req ProfileRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var profile domain.Profile // Fetch existing profile
		if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to fetch profile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
			return
		}
		// Build the replacement in one step; the user id is never writable
		updated := domain.Profile{
			UserID:    profile.UserID, // Keyed to the caller
			FirstName: req.FirstName,  // First name
			LastName:  req.LastName,   // Last name
			Phone:     req.Phone,      // Contact phone number
			Email:     req.Email,      // Contact email
			Address:   req.Address,    // Street address
			City:      req.City,       // City
			State:     req.State,      // State
			Zip:       req.Zip,        // Zip code
		}
		if err := db.Save(&updated).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to update profile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
