package domain

// Product Model
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`                    // Primary key
	Name        string  `gorm:"not null" json:"name"`                    // Product name
	Price       float64 `gorm:"not null" json:"price"`                   // Current catalog price
	CategoryID  uint    `gorm:"index;not null" json:"category_id"`       // Foreign key to Category
	Description string  `json:"description"`                             // Product description
	Subcategory string  `json:"subcategory"`                             // Free-form subcategory label
	Stock       int     `gorm:"not null;default:0" json:"stock"`         // Units in stock
	Featured    bool    `gorm:"not null;default:false" json:"featured"`  // Featured flag
	ImageURL    string  `json:"image_url"`                               // Product image URL
}
