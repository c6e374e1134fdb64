// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered learner.
type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Ayesha Rahman"`
	Phone       string             `json:"phone" bson:"phone" example:"+8801712345678"`
	Email       string             `json:"email" bson:"email" example:"ayesha@example.com"`
	DateOfBirth string             `json:"dateOfBirth" bson:"dateOfBirth" example:"1998-04-12"`
	Address     string             `json:"address" bson:"address" example:"Dhaka, Bangladesh"`
	Gender      string             `json:"gender" bson:"gender" example:"female"`
	Password    string             `json:"-" bson:"password"` // "-" = never include in JSON response
	PhotoURL    *string            `json:"photoURL" bson:"photoURL"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// RegisterRequest is the multipart payload for user registration.
// The optional photo file part is handled separately by the handler.
type RegisterRequest struct {
	Name            string `form:"name" binding:"required"`
	Phone           string `form:"phone" binding:"required,phone"`
	Email           string `form:"email" binding:"required,email"`
	DateOfBirth     string `form:"dateOfBirth" binding:"required"`
	Address         string `form:"address" binding:"required"`
	Gender          string `form:"gender" binding:"required"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

// UpdateProfileRequest is the multipart payload for partial profile updates.
// Nil fields are left untouched; a new photo overwrites photoURL.
type UpdateProfileRequest struct {
	Email       string  `form:"email" binding:"required,email"`
	Name        *string `form:"name"`
	Phone       *string `form:"phone" binding:"omitempty,phone"`
	DateOfBirth *string `form:"dateOfBirth"`
	Address     *string `form:"address"`
	Gender      *string `form:"gender"`
}

// UpdatePasswordRequest is the payload for password updates.
type UpdatePasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// LoginRequest is the payload for user and admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ayesha@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	Token string  `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  Profile `json:"user"`
}

// AdminLoginResponse is the response after successful admin login.
type AdminLoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// Profile is the projected subset of User returned by profile reads.
// The password hash is deliberately excluded.
type Profile struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhotoURL    *string `json:"photoURL"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Gender      string  `json:"gender"`
	DateOfBirth string  `json:"dateOfBirth"`
}

// ProfileFromUser projects a stored user onto the public profile shape.
func ProfileFromUser(u *User) *Profile {
	return &Profile{
		Name:        u.Name,
		Email:       u.Email,
		PhotoURL:    u.PhotoURL,
		Phone:       u.Phone,
		Address:     u.Address,
		Gender:      u.Gender,
		DateOfBirth: u.DateOfBirth,
	}
}
