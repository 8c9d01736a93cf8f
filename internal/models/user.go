package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents an account capable of creating content and reacting.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Bio         string    `json:"bio,omitempty" gorm:"size:500"`
	Password    string    `json:"-"` // bcrypt hash, never serialized
	FirebaseUID string    `json:"firebase_uid,omitempty" gorm:"uniqueIndex"`
	Status      Status    `json:"status" gorm:"type:varchar(20);default:'active';index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SignupRequest defines the request body for local registration
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SigninRequest defines the request body for local authentication
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the request body for updating a profile
type UpdateUserRequest struct {
	Name string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Bio  string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
