package security

import "time"

// Identity is the authenticated caller as reconstructed from a verified
// token. It lives only in the request context; nothing persists it.
type Identity struct {
	UserID    uint
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func IdentityFromClaims(c *Claims) (*Identity, error) {
	id, err := c.UserID()
	if err != nil {
		return nil, err
	}
	ident := &Identity{UserID: id}
	if c.IssuedAt != nil {
		ident.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		ident.ExpiresAt = c.ExpiresAt.Time
	}
	return ident, nil
}
