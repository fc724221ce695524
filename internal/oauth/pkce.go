// File: internal/oauth/pkce.go
package oauth

import (
	"encoding/base64"

	"golang.org/x/oauth2"
)

const MethodS256 = "S256"

// PKCE code verifier 與 challenge
type PKCE struct {
	Verifier       string `json:"code_verifier"`
	Challenge      string `json:"code_challenge"`
	Method         string `json:"code_challenge_method"`
	VerifierBase64 string `json:"verifier_base64"`
}

// GenerateVerifier 32 bytes 隨機值的 base64url，長度 43
func GenerateVerifier() string {
	return oauth2.GenerateVerifier()
}

// ChallengeS256 base64url(SHA-256(verifier))，不含 padding
func ChallengeS256(verifier string) string {
	return oauth2.S256ChallengeFromVerifier(verifier)
}

func NewPKCE() PKCE {
	v := GenerateVerifier()
	return PKCE{
		Verifier:       v,
		Challenge:      ChallengeS256(v),
		Method:         MethodS256,
		VerifierBase64: base64.StdEncoding.EncodeToString([]byte(v)),
	}
}
