package domain

// Category Model
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`      // Primary key
	Name        string `gorm:"not null" json:"name"`      // Category name
	Description string `json:"description"`               // Category description
}
