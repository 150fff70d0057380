package domain

import "time"

// Order Model. Address fields are copied from the profile at checkout time,
// not referenced live; the order is immutable once created.
type Order struct {
	ID             uint            `gorm:"primaryKey" json:"id"`                 // Primary key
	UserID         uint            `gorm:"index;not null" json:"user_id"`        // Foreign key to User
	Date           time.Time       `gorm:"not null" json:"date"`                 // Checkout timestamp
	Address        string          `json:"address"`                              // Shipping address snapshot
	City           string          `json:"city"`                                 // Shipping city snapshot
	State          string          `json:"state"`                                // Shipping state snapshot
	Zip            string          `json:"zip"`                                  // Shipping zip snapshot
	ShippingAmount float64         `gorm:"not null;default:0" json:"shipping_amount"` // Shipping cost
	LineItems      []OrderLineItem `gorm:"foreignKey:OrderID" json:"line_items"` // One line per distinct cart product
}

// OrderLineItem Model. SalesPrice and Discount are captured at checkout time,
// not the live product price.
type OrderLineItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`                 // Primary key
	OrderID    uint    `gorm:"index;not null" json:"order_id"`       // Foreign key to Order
	ProductID  uint    `gorm:"not null" json:"product_id"`           // Foreign key to Product
	SalesPrice float64 `gorm:"not null" json:"sales_price"`          // Price at checkout time
	Discount   float64 `gorm:"not null;default:0" json:"discount"`   // Discount at checkout time
	Quantity   int     `gorm:"not null" json:"quantity"`             // Quantity ordered
}
