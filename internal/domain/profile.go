package domain

// Profile Model holds the shipping and contact details for one user
type Profile struct {
	UserID    uint   `gorm:"primaryKey" json:"user_id"` // Foreign key to User, one profile per user
	FirstName string `json:"first_name"`                // First name
	LastName  string `json:"last_name"`                 // Last name
	Phone     string `json:"phone"`                     // Contact phone number
	Email     string `json:"email"`                     // Contact email
	Address   string `json:"address"`                   // Street address
	City      string `json:"city"`                      // City
	State     string `json:"state"`                     // State
	Zip       string `json:"zip"`                       // Zip code
}
