// internal/application/usecase/cart_usecase_test.go
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdom "tiendapos/internal/domain/product"
)

func TestCartGetMissingReadsAsEmpty(t *testing.T) {
	uc := NewCartUsecase(newFakeCartStore(), newFakeProductRepo())

	c, err := uc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestCartGetRequiresTerminalID(t *testing.T) {
	uc := NewCartUsecase(newFakeCartStore(), newFakeProductRepo())

	_, err := uc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrCartTerminalEmpty)
}

func TestCartAddItemSnapshotsCatalogPrice(t *testing.T) {
	sku := "BEB-001"
	repo := newFakeProductRepo(productdom.Product{
		ID: "p1", SKU: &sku, Name: "Coca-Cola 1.5L", SalePrice: 2500, Stock: 10,
	})
	store := newFakeCartStore()
	uc := NewCartUsecase(store, repo)

	c, err := uc.AddItem(context.Background(), "t1", "p1")
	require.NoError(t, err)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2500, lines[0].Product.UnitPrice)
	assert.Equal(t, "BEB-001", lines[0].Product.SKU)

	// A later catalog price change must not touch the saved line.
	p := repo.byID["p1"]
	p.SalePrice = 2990
	repo.byID["p1"] = p

	c, err = uc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 2500, c.Lines()[0].Product.UnitPrice)
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	uc := NewCartUsecase(newFakeCartStore(), newFakeProductRepo())

	_, err := uc.AddItem(context.Background(), "t1", "ghost")
	assert.ErrorIs(t, err, productdom.ErrNotFound)
}

func TestCartSessionsAreIsolatedPerTerminal(t *testing.T) {
	repo := newFakeProductRepo(
		productdom.Product{ID: "p1", Name: "Agua", SalePrice: 900, Stock: 10},
		productdom.Product{ID: "p2", Name: "Snack", SalePrice: 1500, Stock: 10},
	)
	store := newFakeCartStore()
	uc := NewCartUsecase(store, repo)

	_, err := uc.AddItem(context.Background(), "t1", "p1")
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), "t2", "p2")
	require.NoError(t, err)

	c1, err := uc.Get(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, c1.Lines(), 1)
	assert.Equal(t, "p1", c1.Lines()[0].Product.ID)

	c2, err := uc.Get(context.Background(), "t2")
	require.NoError(t, err)
	assert.Equal(t, "p2", c2.Lines()[0].Product.ID)
}

func TestCartSetQuantityAndRemovePersist(t *testing.T) {
	repo := newFakeProductRepo(productdom.Product{ID: "p1", Name: "Agua", SalePrice: 900, Stock: 10})
	store := newFakeCartStore()
	uc := NewCartUsecase(store, repo)

	_, err := uc.AddItem(context.Background(), "t1", "p1")
	require.NoError(t, err)

	c, err := uc.SetQuantity(context.Background(), "t1", "p1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, c.ItemCount())

	reloaded, err := uc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 4, reloaded.ItemCount())

	_, err = uc.RemoveItem(context.Background(), "t1", "p1")
	require.NoError(t, err)

	reloaded, err = uc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, reloaded.IsEmpty())
}

func TestCartClearDeletesTheSession(t *testing.T) {
	repo := newFakeProductRepo(productdom.Product{ID: "p1", Name: "Agua", SalePrice: 900, Stock: 10})
	store := newFakeCartStore()
	uc := NewCartUsecase(store, repo)

	_, err := uc.AddItem(context.Background(), "t1", "p1")
	require.NoError(t, err)

	require.NoError(t, uc.Clear(context.Background(), "t1"))
	assert.Equal(t, 1, store.deletes)

	// Clearing again is fine, the terminal just reads empty.
	require.NoError(t, uc.Clear(context.Background(), "t1"))

	c, err := uc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}
