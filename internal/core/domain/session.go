package domain

import "time"

// Session is the authenticated context injected into the API adapter at
// construction. It is set on login, cleared on logout or expiry; nothing
// reads the credential ambiently.
type Session struct {
	Token   string
	ActorID uint64
	Email   string
	SavedAt time.Time
}
