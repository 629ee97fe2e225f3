package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the console can read out of the operator's bearer token.
// The signature is not checked here; the backend does that on every call.
type Identity struct {
	Subject   string     `json:"subject,omitempty"`
	Username  string     `json:"username,omitempty"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// DecodeIdentity reads the claims of a JWT bearer token without verifying it.
func DecodeIdentity(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("decode token: %w", err)
	}

	var id Identity
	id.Subject, _ = claims.GetSubject()
	if id.Subject == "" {
		id.Subject = stringClaim(claims, "id", "_id", "userId")
	}
	id.Username = stringClaim(claims, "username", "name")
	id.Role = stringClaim(claims, "role")
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		id.ExpiresAt = &t
	}
	return id, nil
}

func stringClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
