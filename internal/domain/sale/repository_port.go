// internal/domain/sale/repository_port.go
package sale

import (
	"context"
	"time"
)

// Repository is the persistence port for sales.
//
// CreateHeader and CreateLines are two separate calls on purpose: the
// checkout sequence requires the header id before any line is written, and
// the flow makes no atomicity promise across the two. Whether CreateLines is
// all-or-nothing for the batch it receives is implementation-defined and must
// be documented by the implementation (the Postgres repo uses a single
// multi-row INSERT, so its batch is all-or-nothing).
type Repository interface {
	// CreateHeader inserts the sale row and returns the generated sale id.
	CreateHeader(ctx context.Context, total int, method Method, createdAt time.Time) (string, error)

	// CreateLines inserts the given lines for an existing sale id.
	CreateLines(ctx context.Context, saleID string, lines []Line) error

	// GetByID returns the sale with its lines (product name/sku joined).
	GetByID(ctx context.Context, id string) (Sale, error)

	// ListRecent returns up to limit sales, newest first, lines joined.
	ListRecent(ctx context.Context, limit int) ([]Sale, error)
}
