// internal/domain/category/repository_port.go
package category

import "context"

// Repository is the persistence port for categories.
type Repository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]Category, error)

	GetByID(ctx context.Context, id string) (Category, error)
	Create(ctx context.Context, c Category) (Category, error)
	Delete(ctx context.Context, id string) error
}
