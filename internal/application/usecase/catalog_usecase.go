// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	categorydom "tiendapos/internal/domain/category"
	productdom "tiendapos/internal/domain/product"
)

// ProductListCache is an optional read-through cache for the product list.
// A miss, a decode problem or a backend error all read as "not cached"; the
// usecase then falls back to the repository. Implementations log their own
// failures, callers never see them.
type ProductListCache interface {
	Get(ctx context.Context) ([]productdom.Product, bool)
	Set(ctx context.Context, products []productdom.Product)
	Invalidate(ctx context.Context)
}

var ErrCatalogRepoMissing = errors.New("catalog: repository is not configured")

// CatalogUsecase serves product/category reads for the POS and the catalog
// management operations behind them.
type CatalogUsecase struct {
	products   productdom.Repository
	categories categorydom.Repository
	cache      ProductListCache
	now        func() time.Time
}

func NewCatalogUsecase(products productdom.Repository, categories categorydom.Repository, cache ProductListCache) *CatalogUsecase {
	return &CatalogUsecase{
		products:   products,
		categories: categories,
		cache:      cache,
		now:        time.Now,
	}
}

// ========================================
// Reads (POS surface)
// ========================================

// ListProducts returns the catalog ordered by name. On a store failure it
// returns an empty slice and logs the error; the POS keeps rendering.
func (u *CatalogUsecase) ListProducts(ctx context.Context) []productdom.Product {
	if u.products == nil {
		log.Printf("[catalog_uc] WARN: product repository not configured")
		return []productdom.Product{}
	}
	if u.cache != nil {
		if cached, ok := u.cache.Get(ctx); ok {
			return cached
		}
	}
	items, err := u.products.List(ctx)
	if err != nil {
		log.Printf("[catalog_uc] WARN: list products failed: %v", err)
		return []productdom.Product{}
	}
	if items == nil {
		items = []productdom.Product{}
	}
	if u.cache != nil {
		u.cache.Set(ctx, items)
	}
	return items
}

// ListCategories returns all categories ordered by name, empty on error.
func (u *CatalogUsecase) ListCategories(ctx context.Context) []categorydom.Category {
	if u.categories == nil {
		log.Printf("[catalog_uc] WARN: category repository not configured")
		return []categorydom.Category{}
	}
	items, err := u.categories.List(ctx)
	if err != nil {
		log.Printf("[catalog_uc] WARN: list categories failed: %v", err)
		return []categorydom.Category{}
	}
	if items == nil {
		items = []categorydom.Category{}
	}
	return items
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id string) (productdom.Product, error) {
	if u.products == nil {
		return productdom.Product{}, ErrCatalogRepoMissing
	}
	return u.products.GetByID(ctx, strings.TrimSpace(id))
}

// ========================================
// Catalog management (admin / inventory roles)
// ========================================

type CreateProductInput struct {
	SKU        *string
	Name       string
	SalePrice  int
	Stock      int
	CategoryID *string
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (productdom.Product, error) {
	if u.products == nil {
		return productdom.Product{}, ErrCatalogRepoMissing
	}
	p, err := productdom.New(uuid.NewString(), in.Name, in.SalePrice, in.Stock, in.SKU, in.CategoryID, u.now().UTC())
	if err != nil {
		return productdom.Product{}, err
	}
	created, err := u.products.Create(ctx, p)
	if err != nil {
		return productdom.Product{}, err
	}
	u.invalidate(ctx)
	return created, nil
}

type UpdateProductInput struct {
	Name       *string
	SalePrice  *int
	Stock      *int
	SKU        *string
	CategoryID *string
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (productdom.Product, error) {
	if u.products == nil {
		return productdom.Product{}, ErrCatalogRepoMissing
	}
	p, err := u.products.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return productdom.Product{}, err
	}
	if in.Name != nil {
		if err := p.Rename(*in.Name); err != nil {
			return productdom.Product{}, err
		}
	}
	if in.SalePrice != nil {
		if err := p.SetSalePrice(*in.SalePrice); err != nil {
			return productdom.Product{}, err
		}
	}
	if in.Stock != nil {
		if err := p.SetStock(*in.Stock); err != nil {
			return productdom.Product{}, err
		}
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			p.SKU = nil
		} else {
			p.SKU = &sku
		}
	}
	if in.CategoryID != nil {
		cid := strings.TrimSpace(*in.CategoryID)
		if cid == "" {
			p.CategoryID = nil
		} else {
			p.CategoryID = &cid
		}
	}
	updated, err := u.products.Update(ctx, p)
	if err != nil {
		return productdom.Product{}, err
	}
	u.invalidate(ctx)
	return updated, nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id string) error {
	if u.products == nil {
		return ErrCatalogRepoMissing
	}
	if err := u.products.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}
	u.invalidate(ctx)
	return nil
}

func (u *CatalogUsecase) CreateCategory(ctx context.Context, name string) (categorydom.Category, error) {
	if u.categories == nil {
		return categorydom.Category{}, ErrCatalogRepoMissing
	}
	c, err := categorydom.New(uuid.NewString(), name, u.now().UTC())
	if err != nil {
		return categorydom.Category{}, err
	}
	return u.categories.Create(ctx, c)
}

func (u *CatalogUsecase) invalidate(ctx context.Context) {
	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
}
