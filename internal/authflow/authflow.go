// File: internal/authflow/authflow.go
package authflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wakatimer/internal/cache"
)

// TTL 為 OAuth nonce 與 OTP flow 的保存時間
const TTL = 10 * time.Minute

const (
	noncePrefix = "authflow:nonce:"
	otpPrefix   = "authflow:otp:"
)

var (
	ErrUnknownNonce = errors.New("unknown or expired oauth nonce")
	ErrUnknownFlow  = errors.New("unknown or expired otp flow")
)

// OTPFlow 在 OTP create 與 verify 之間保存於伺服器端
type OTPFlow struct {
	Email    string `json:"email"`
	Verifier string `json:"verifier"`
}

// Store 以 Cache 保存短期的登入流程狀態
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewStore(c cache.Cache) *Store {
	return &Store{cache: c, ttl: TTL}
}

// newID 測試可覆寫
var newID = func() string { return uuid.NewString() }

// NewNonce 建立並保存一個新的 nonce
func (s *Store) NewNonce(ctx context.Context) (string, error) {
	nonce := newID()
	if err := s.SaveNonce(ctx, nonce); err != nil {
		return "", err
	}
	return nonce, nil
}

func (s *Store) SaveNonce(ctx context.Context, nonce string) error {
	if err := s.cache.Set(ctx, noncePrefix+nonce, "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("SaveNonce: %w", err)
	}
	return nil
}

// ConsumeNonce 成功後 nonce 即失效
func (s *Store) ConsumeNonce(ctx context.Context, nonce string) error {
	if nonce == "" {
		return ErrUnknownNonce
	}
	n, err := s.cache.Del(ctx, noncePrefix+nonce).Result()
	if err != nil {
		return fmt.Errorf("ConsumeNonce: %w", err)
	}
	if n == 0 {
		return ErrUnknownNonce
	}
	return nil
}

// SaveOTPFlow 回傳 flow id，表單只帶 id 不帶 verifier
func (s *Store) SaveOTPFlow(ctx context.Context, email, verifier string) (string, error) {
	id := newID()
	if err := cache.SetJSON(ctx, s.cache, otpPrefix+id, OTPFlow{Email: email, Verifier: verifier}, s.ttl); err != nil {
		return "", fmt.Errorf("SaveOTPFlow: %w", err)
	}
	return id, nil
}

// ConsumeOTPFlow 讀出後刪除，只有實際刪掉 key 的呼叫端算成功
func (s *Store) ConsumeOTPFlow(ctx context.Context, id string) (OTPFlow, error) {
	var flow OTPFlow
	if id == "" {
		return flow, ErrUnknownFlow
	}
	if err := cache.GetJSON(ctx, s.cache, otpPrefix+id, &flow); err != nil {
		if cache.IsMiss(err) {
			return flow, ErrUnknownFlow
		}
		return flow, fmt.Errorf("ConsumeOTPFlow: %w", err)
	}
	n, err := s.cache.Del(ctx, otpPrefix+id).Result()
	if err != nil {
		return OTPFlow{}, fmt.Errorf("ConsumeOTPFlow: %w", err)
	}
	if n == 0 {
		return OTPFlow{}, ErrUnknownFlow
	}
	return flow, nil
}
