package domain

// Roles assignable to a user
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User Model
type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`                                   // Primary key
	Username string  `gorm:"unique;not null" json:"username"`                        // Unique username, stored lowercase
	Password string  `gorm:"not null" json:"-"`                                      // Bcrypt hash, never serialized
	Role     string  `gorm:"default:user" json:"role"`                               // Role: user or admin
	Profile  Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-one relationship with Profile
}
