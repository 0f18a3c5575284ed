package cart

import "context"

// Store keeps one cart per session key. Saves are last-writer-wins; the
// domain needs no stronger guarantee because a session is a single
// shopper.
type Store interface {
	// Load returns the cart for a session, or an empty cart if the
	// session has none yet.
	Load(ctx context.Context, sessionID string) (Cart, error)
	// Save replaces the session's cart.
	Save(ctx context.Context, sessionID string, c Cart) error
}
