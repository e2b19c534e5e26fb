package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"postdesk/internal/core/domain"
)

// InspectToken checks that a bearer credential is usable without
// verifying its signature: verification belongs to the API server, the
// client only needs to know whether to route the user to login. A
// malformed payload maps to ErrNotAuthenticated, an expired one to
// ErrSessionExpired.
func InspectToken(token string) error {
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return domain.ErrNotAuthenticated
	}

	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return domain.ErrNotAuthenticated
	}
	if expiry != nil && expiry.Before(time.Now()) {
		return domain.ErrSessionExpired
	}
	return nil
}
