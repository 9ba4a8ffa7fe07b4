// internal/domain/cart/store_port.go
package cart

import "context"

// Store is a persistence port for terminal cart sessions.
//
// Storage recommendation (Firestore):
// - collection: carts
// - docId: terminalID
// - fields: lines, createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on "expiresAt"; implementations refresh it on
//   every Save so an abandoned terminal cart expires on its own.
type Store interface {
	// GetByTerminalID returns (nil, nil) when no cart doc exists; the
	// application layer treats nil as an empty cart.
	GetByTerminalID(ctx context.Context, terminalID string) (*Cart, error)

	// Save overwrites the terminal's cart snapshot.
	Save(ctx context.Context, terminalID string, c *Cart) error

	// DeleteByTerminalID removes the cart doc (after a committed sale).
	DeleteByTerminalID(ctx context.Context, terminalID string) error
}
