// File: internal/model/auth_event.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 登入方式
const (
	AuthMethodPassword = "password"
	AuthMethodOTP      = "otp"
	AuthMethodGitHub   = "github"
	AuthMethodSignup   = "signup"
)

// AuthEvent 一筆登入紀錄，存於 auth_events
type AuthEvent struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Email     string    `db:"email" json:"email"`
	Method    string    `db:"method" json:"method"`
	Success   bool      `db:"success" json:"success"`
	IP        string    `db:"ip" json:"ip"`
	UserAgent string    `db:"user_agent" json:"user_agent"`
	Message   string    `db:"message" json:"message,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
