// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
	"time"
)

// ========================================
// Types
// ========================================

// Product is a sellable catalog item. SalePrice is in minor currency units.
// Stock is mutated by the checkout flow (read-then-write, see checkout
// usecase); everything else changes only through catalog management.
type Product struct {
	ID         string
	SKU        *string
	Name       string
	SalePrice  int
	Stock      int
	CategoryID *string
	CreatedAt  time.Time
}

// ========================================
// Errors
// ========================================

var (
	ErrNotFound     = errors.New("product: not found")
	ErrInvalidID    = errors.New("product: invalid id")
	ErrInvalidName  = errors.New("product: invalid name")
	ErrInvalidPrice = errors.New("product: invalid price")
	ErrInvalidStock = errors.New("product: invalid stock")
)

// ========================================
// Policy
// ========================================

var (
	// Price bounds (0 disables upper bound)
	MinPrice = 0
	MaxPrice = 100_000_000

	MaxNameLen = 120
)

// ========================================
// Constructor
// ========================================

func New(id, name string, salePrice, stock int, sku, categoryID *string, now time.Time) (Product, error) {
	p := Product{
		ID:         strings.TrimSpace(id),
		SKU:        normalizePtr(sku),
		Name:       strings.TrimSpace(name),
		SalePrice:  salePrice,
		Stock:      stock,
		CategoryID: normalizePtr(categoryID),
		CreatedAt:  now,
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// ========================================
// Behavior
// ========================================

func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLen {
		return ErrInvalidName
	}
	p.Name = name
	return nil
}

func (p *Product) SetSalePrice(price int) error {
	if !priceAllowed(price) {
		return ErrInvalidPrice
	}
	p.SalePrice = price
	return nil
}

// SetStock replaces the stored stock level. Negative levels are rejected
// here; the checkout flow's decrement never asks for one (it subtracts from
// the value it just read).
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	p.Stock = stock
	return nil
}

// Sellable reports whether the product may be offered at the POS.
func (p Product) Sellable() bool {
	return p.Stock > 0
}

// ========================================
// Validation
// ========================================

func (p Product) Validate() error {
	if p.ID == "" {
		return ErrInvalidID
	}
	if p.Name == "" || len(p.Name) > MaxNameLen {
		return ErrInvalidName
	}
	if !priceAllowed(p.SalePrice) {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

// ========================================
// Helpers
// ========================================

func priceAllowed(v int) bool {
	if v < MinPrice {
		return false
	}
	if MaxPrice > 0 && v > MaxPrice {
		return false
	}
	return true
}

func normalizePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

// ProductsTableDDL defines the SQL for the products table migration.
const ProductsTableDDL = `
-- Migration: Initialize Product domain
-- Mirrors internal/domain/product/entity.go

BEGIN;

CREATE TABLE IF NOT EXISTS products (
  id          TEXT        PRIMARY KEY,
  sku         TEXT,
  name        TEXT        NOT NULL,
  sale_price  BIGINT      NOT NULL,
  stock       INTEGER     NOT NULL DEFAULT 0,
  category_id TEXT        REFERENCES categories(id) ON DELETE SET NULL,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),

  CONSTRAINT chk_products_non_empty CHECK (
    char_length(trim(id)) > 0
    AND char_length(trim(name)) > 0
  ),
  CONSTRAINT chk_products_price CHECK (sale_price >= 0),
  CONSTRAINT chk_products_stock CHECK (stock >= 0)
);

CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);

COMMIT;
`
