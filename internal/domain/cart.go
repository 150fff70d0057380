package domain

// CartItem is one row of the shopping_cart table: a (user, product) pairing
// with a quantity. The composite unique index is what makes the add-to-cart
// upsert a single atomic statement.
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`                                // Primary key
	UserID    uint    `gorm:"uniqueIndex:idx_cart_user_product" json:"-"`         // Owning user
	ProductID uint    `gorm:"uniqueIndex:idx_cart_user_product" json:"-"`         // Product in the cart
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`                 // Quantity, always >= 1
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`                // Joined fresh from the catalog on read
}

// TableName keeps the original table name instead of gorm's pluralization
func (CartItem) TableName() string {
	return "shopping_cart"
}

// LineTotal is the current price of the line (catalog price x quantity)
func (ci CartItem) LineTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}

// ShoppingCart is the per-user cart view returned by the API. It is computed
// from shopping_cart rows on every read and never persisted.
type ShoppingCart struct {
	Items map[uint]ShoppingCartItem `json:"items"` // Cart lines keyed by product id
	Total float64                   `json:"total"` // Sum of all line totals
}

// ShoppingCartItem is one cart line in the view
type ShoppingCartItem struct {
	Product   Product `json:"product"`    // Product snapshot from the catalog
	Quantity  int     `json:"quantity"`   // Quantity in the cart
	LineTotal float64 `json:"line_total"` // price x quantity
}

// NewShoppingCart builds the cart view from shopping_cart rows
func NewShoppingCart(items []CartItem) ShoppingCart {
	cart := ShoppingCart{Items: make(map[uint]ShoppingCartItem)}
	for _, item := range items {
		lineTotal := item.LineTotal()
		cart.Items[item.ProductID] = ShoppingCartItem{
			Product:   item.Product,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		}
		cart.Total += lineTotal
	}
	return cart
}
