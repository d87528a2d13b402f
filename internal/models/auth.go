package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest selects a roster entry. There are no credentials: the login
// screen is a role picker over a fixed set of users.
type LoginRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// LoginResponse returns the issued session token and the selected user.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	User        User      `json:"user"`
	IssuedAt    time.Time `json:"issued_at"`
}

// SessionClaims carries the caller identity through the request pipeline.
// BuildingID is populated for dorm managers, StudentID for students.
type SessionClaims struct {
	UserID     string `json:"uid"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	BuildingID string `json:"building_id,omitempty"`
	StudentID  string `json:"student_id,omitempty"`
	jwt.RegisteredClaims
}
