// internal/domain/product/repository_port.go
package product

import "context"

// Repository is the persistence port for products.
//
// GetStock/SetStock are deliberately two independent calls: the checkout flow
// performs a read-then-write against the latest stored value with no
// compare-and-swap, so concurrent sales of the same product follow
// last-writer-wins. Hardening this to an atomic decrement belongs to the
// store, not to this port's callers.
type Repository interface {
	// List returns all products ordered by name.
	List(ctx context.Context) ([]Product, error)

	GetByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id string) error

	// GetStock returns the current stored stock level.
	GetStock(ctx context.Context, id string) (int, error)

	// SetStock overwrites the stored stock level.
	SetStock(ctx context.Context, id string, stock int) error
}
