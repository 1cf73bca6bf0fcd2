package domain

import "time"

// Token is a persisted OAuth2 credential bundle. ExpiresAt is an
// absolute Unix timestamp so the stored record stays meaningful across
// process restarts; a zero ExpiresAt is treated as already expired.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope,omitempty"`
	ExpiresAt    int64  `json:"expires_at"`
}

// Expiry returns the token's absolute expiry time.
func (t *Token) Expiry() time.Time {
	return time.Unix(t.ExpiresAt, 0)
}

// ExpiresWithin reports whether the token expires within margin of now.
func (t *Token) ExpiresWithin(now time.Time, margin time.Duration) bool {
	if t.ExpiresAt == 0 {
		return true
	}
	return !t.Expiry().After(now.Add(margin))
}
