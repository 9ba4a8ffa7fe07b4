// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "tiendapos/internal/domain/cart"
	productdom "tiendapos/internal/domain/product"
)

var (
	ErrCartStoreMissing  = errors.New("cart: store is not configured")
	ErrCartTerminalEmpty = errors.New("cart: terminalId is empty")
)

// CartUsecase mirrors each terminal's in-progress cart to the cart store so
// a reloaded terminal resumes where it left off. All state transitions happen
// on the pure aggregate; this layer only loads, applies and saves.
type CartUsecase struct {
	store    cartdom.Store
	products productdom.Repository
}

func NewCartUsecase(store cartdom.Store, products productdom.Repository) *CartUsecase {
	return &CartUsecase{store: store, products: products}
}

// Get returns the terminal's cart; a missing doc reads as an empty cart.
func (u *CartUsecase) Get(ctx context.Context, terminalID string) (*cartdom.Cart, error) {
	tid := strings.TrimSpace(terminalID)
	if tid == "" {
		return nil, ErrCartTerminalEmpty
	}
	if u.store == nil {
		return nil, ErrCartStoreMissing
	}
	c, err := u.store.GetByTerminalID(ctx, tid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = cartdom.New()
	}
	return c, nil
}

// AddItem resolves the product, snapshots its current price into the cart and
// saves. The selection UI only offers stock > 0; this path does not
// re-validate availability.
func (u *CartUsecase) AddItem(ctx context.Context, terminalID, productID string) (*cartdom.Cart, error) {
	c, err := u.Get(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	p, err := u.products.GetByID(ctx, strings.TrimSpace(productID))
	if err != nil {
		return nil, err
	}
	ref := cartdom.ProductRef{ID: p.ID, Name: p.Name, UnitPrice: p.SalePrice}
	if p.SKU != nil {
		ref.SKU = *p.SKU
	}
	c.Add(ref)
	return c, u.store.Save(ctx, strings.TrimSpace(terminalID), c)
}

// SetQuantity updates a line's quantity; qty <= 0 removes the line.
func (u *CartUsecase) SetQuantity(ctx context.Context, terminalID, productID string, qty int) (*cartdom.Cart, error) {
	c, err := u.Get(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	c.SetQuantity(strings.TrimSpace(productID), qty)
	return c, u.store.Save(ctx, strings.TrimSpace(terminalID), c)
}

// RemoveItem deletes a line; no-op if absent.
func (u *CartUsecase) RemoveItem(ctx context.Context, terminalID, productID string) (*cartdom.Cart, error) {
	c, err := u.Get(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	c.Remove(strings.TrimSpace(productID))
	return c, u.store.Save(ctx, strings.TrimSpace(terminalID), c)
}

// Clear empties the terminal's cart (explicit cancel, or after a committed
// sale). Clearing an absent cart succeeds.
func (u *CartUsecase) Clear(ctx context.Context, terminalID string) error {
	tid := strings.TrimSpace(terminalID)
	if tid == "" {
		return ErrCartTerminalEmpty
	}
	if u.store == nil {
		return ErrCartStoreMissing
	}
	return u.store.DeleteByTerminalID(ctx, tid)
}
