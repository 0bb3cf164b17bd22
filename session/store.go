// Package session keeps per-browser login state on the server. A session
// carries two independent identities, admin and customer, and is addressed by
// an opaque token that travels to the browser inside a signed cookie.
package session

import (
	"context"
	"time"
)

// Data is everything remembered about one browser session.
type Data struct {
	AdminAuthenticated bool   `json:"admin_authenticated,omitempty"`
	AdminUsername      string `json:"admin_username,omitempty"`

	CustomerAuthenticated bool   `json:"customer_authenticated,omitempty"`
	CustomerID            uint   `json:"customer_id,omitempty"`
	CustomerEmail         string `json:"customer_email,omitempty"`

	Remember bool `json:"remember,omitempty"`
}

// Empty reports whether no identity is attached.
func (d Data) Empty() bool {
	return !d.AdminAuthenticated && !d.CustomerAuthenticated
}

// Store persists session data by token. Get returns (nil, nil) for unknown
// or expired tokens.
type Store interface {
	Get(ctx context.Context, token string) (*Data, error)
	Set(ctx context.Context, token string, data Data, ttl time.Duration) error
	Destroy(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
