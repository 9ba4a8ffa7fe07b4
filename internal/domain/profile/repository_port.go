// internal/domain/profile/repository_port.go
package profile

import "context"

// Repository is the persistence port for staff profiles.
type Repository interface {
	// List returns all profiles ordered by creation time, newest first.
	List(ctx context.Context) ([]Profile, error)

	GetByID(ctx context.Context, id string) (Profile, error)
	Create(ctx context.Context, p Profile) (Profile, error)
	Delete(ctx context.Context, id string) error
}
