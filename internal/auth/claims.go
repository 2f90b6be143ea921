package auth

import "time"

// VisitorClaims are the decrypted contents of a visitor token.
type VisitorClaims struct {
	Issuer     string    `json:"iss"`
	Subject    string    `json:"sub"`
	Expiration time.Time `json:"exp"`
	IssuedAt   time.Time `json:"iat"`
	TokenID    string    `json:"jti"`
}

// VisitorID is the token subject.
func (c *VisitorClaims) VisitorID() string {
	return c.Subject
}
