// Package refreshtokens declares the ledger of issued refresh tokens.
package refreshtokens

import (
	"context"
	"time"
)

// Repository records issued refresh tokens.
type Repository interface {
	// Create stores the token id (jti) issued to userID with an expiry of
	// now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
}
