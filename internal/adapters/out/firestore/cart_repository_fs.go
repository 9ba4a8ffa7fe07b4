// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "tiendapos/internal/domain/cart"
)

// DefaultCartTTL is the inactivity window after which a terminal cart doc
// becomes eligible for auto deletion (Firestore TTL configured on expiresAt).
const DefaultCartTTL = 24 * time.Hour

// CartRepositoryFS implements cart.Store using Firestore.
//
// Collection design:
// - collection: carts
// - docId: terminalID (docId is the source of truth)
// - fields: lines, createdAt, updatedAt, expiresAt
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("carts")
}

// GetByTerminalID returns (nil, nil) if no cart doc exists.
func (r *CartRepositoryFS) GetByTerminalID(ctx context.Context, terminalID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}
	tid := strings.TrimSpace(terminalID)
	if tid == "" {
		return nil, errors.New("cart_repository_fs: terminalID is empty")
	}

	snap, err := r.col().Doc(tid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var doc cartDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// Save overwrites the full cart doc and refreshes the TTL basis.
func (r *CartRepositoryFS) Save(ctx context.Context, terminalID string, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("cart_repository_fs: cart is nil")
	}
	tid := strings.TrimSpace(terminalID)
	if tid == "" {
		return errors.New("cart_repository_fs: terminalID is empty")
	}

	now := time.Now().UTC()
	doc := cartDocFromDomain(c, now)

	_, err := r.col().Doc(tid).Set(ctx, doc)
	return err
}

// DeleteByTerminalID removes the cart doc; deleting an absent doc succeeds.
func (r *CartRepositoryFS) DeleteByTerminalID(ctx context.Context, terminalID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	tid := strings.TrimSpace(terminalID)
	if tid == "" {
		return errors.New("cart_repository_fs: terminalID is empty")
	}
	_, err := r.col().Doc(tid).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartDoc struct {
	Lines     []cartLineDoc `firestore:"lines"`
	CreatedAt time.Time     `firestore:"createdAt"`
	UpdatedAt time.Time     `firestore:"updatedAt"`
	ExpiresAt time.Time     `firestore:"expiresAt"`
}

type cartLineDoc struct {
	ProductID string `firestore:"productId"`
	SKU       string `firestore:"sku,omitempty"`
	Name      string `firestore:"name"`
	UnitPrice int    `firestore:"unitPrice"`
	Qty       int    `firestore:"qty"`
}

func cartDocFromDomain(c *cartdom.Cart, now time.Time) cartDoc {
	lines := []cartLineDoc{}
	for _, ln := range c.Lines() {
		if ln.Product.ID == "" || ln.Qty <= 0 {
			continue
		}
		lines = append(lines, cartLineDoc{
			ProductID: ln.Product.ID,
			SKU:       ln.Product.SKU,
			Name:      ln.Product.Name,
			UnitPrice: ln.Product.UnitPrice,
			Qty:       ln.Qty,
		})
	}
	return cartDoc{
		Lines:     lines,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(DefaultCartTTL),
	}
}

func (d cartDoc) toDomain() *cartdom.Cart {
	lines := make([]cartdom.Line, 0, len(d.Lines))
	for _, ln := range d.Lines {
		lines = append(lines, cartdom.Line{
			Product: cartdom.ProductRef{
				ID:        ln.ProductID,
				SKU:       ln.SKU,
				Name:      ln.Name,
				UnitPrice: ln.UnitPrice,
			},
			Qty: ln.Qty,
		})
	}
	// Restore drops invalid entries and merges duplicates.
	return cartdom.Restore(lines)
}
