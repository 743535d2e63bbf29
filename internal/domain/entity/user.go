package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User represents a registered storefront account
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
	AvatarURL    *string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
)

func DefaultRole() UserRole {
	return UserRoleCustomer
}

// Claims are the token claims this service issues and verifies.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
