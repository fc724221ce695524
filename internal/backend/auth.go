// File: internal/backend/auth.go
package backend

import (
	"context"
	"net/http"

	"wakatimer/internal/model"
)

// AuthResponse /api/auth/* 共用的回應格式
type AuthResponse struct {
	Data    model.SessionData `json:"data"`
	Status  int               `json:"status,omitempty"`
	Message string            `json:"message,omitempty"`
}

type OTPCreateRequest struct {
	Email           string `json:"email"`
	CodeChallenge   string `json:"code_challenge"`
	ChallengeMethod string `json:"challenge_method"`
}

type OTPVerifyRequest struct {
	Email        string `json:"email"`
	OTP          string `json:"otp"`
	CodeVerifier string `json:"code_verifier"`
}

func (c *Client) auth(ctx context.Context, path string, body any) (AuthResponse, error) {
	var out AuthResponse
	err := c.Do(ctx, http.MethodPost, path, "", body, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	return c.auth(ctx, "/api/auth/login", map[string]string{"email": email, "password": password})
}

func (c *Client) Signup(ctx context.Context, email, password, passwordRepeat string) (AuthResponse, error) {
	return c.auth(ctx, "/api/auth/signup", map[string]string{
		"email":           email,
		"password":        password,
		"password_repeat": passwordRepeat,
	})
}

func (c *Client) CreateOTP(ctx context.Context, req OTPCreateRequest) (AuthResponse, error) {
	return c.auth(ctx, "/api/auth/otp/create", req)
}

func (c *Client) VerifyOTP(ctx context.Context, req OTPVerifyRequest) (AuthResponse, error) {
	return c.auth(ctx, "/api/auth/otp/verify", req)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (AuthResponse, error) {
	return c.auth(ctx, "/api/auth/forgot-password", map[string]string{"email": email})
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) (AuthResponse, error) {
	return c.auth(ctx, "/api/auth/reset-password", map[string]string{"token": token, "password": password})
}

// GitHubOAuth 以 authorization code 交換後端 session
func (c *Client) GitHubOAuth(ctx context.Context, code string) (AuthResponse, error) {
	return c.auth(ctx, "/api/auth/oauth/github", map[string]string{"code": code})
}
