// internal/adapters/out/db/product_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dbcommon "tiendapos/internal/adapters/out/db/common"
	productdom "tiendapos/internal/domain/product"
)

type ProductRepositoryPG struct {
	DB *sql.DB
}

func NewProductRepositoryPG(db *sql.DB) *ProductRepositoryPG {
	return &ProductRepositoryPG{DB: db}
}

// ========================
// Repository impl
// ========================

func (r *ProductRepositoryPG) List(ctx context.Context) ([]productdom.Product, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT id, sku, name, sale_price, stock, category_id, created_at
FROM products
ORDER BY name ASC`
	rows, err := run.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]productdom.Product, 0, 64)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ProductRepositoryPG) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT id, sku, name, sale_price, stock, category_id, created_at
FROM products
WHERE id = $1`
	p, err := scanProduct(run.QueryRowContext(ctx, q, strings.TrimSpace(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}
	return p, nil
}

func (r *ProductRepositoryPG) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO products (id, sku, name, sale_price, stock, category_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := run.ExecContext(ctx, q, p.ID, p.SKU, p.Name, p.SalePrice, p.Stock, p.CategoryID, p.CreatedAt)
	if err != nil {
		return productdom.Product{}, err
	}
	return p, nil
}

func (r *ProductRepositoryPG) Update(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
UPDATE products
SET sku = $2, name = $3, sale_price = $4, stock = $5, category_id = $6
WHERE id = $1`
	res, err := run.ExecContext(ctx, q, p.ID, p.SKU, p.Name, p.SalePrice, p.Stock, p.CategoryID)
	if err != nil {
		return productdom.Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepositoryPG) Delete(ctx context.Context, id string) error {
	run := dbcommon.GetRunner(ctx, r.DB)
	res, err := run.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return productdom.ErrNotFound
	}
	return nil
}

// GetStock reads the current stored stock level.
func (r *ProductRepositoryPG) GetStock(ctx context.Context, id string) (int, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	var stock int
	err := run.QueryRowContext(ctx, `SELECT stock FROM products WHERE id = $1`, strings.TrimSpace(id)).Scan(&stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, productdom.ErrNotFound
		}
		return 0, err
	}
	return stock, nil
}

// SetStock overwrites the stored level. This is a plain UPDATE, not an atomic
// decrement: the checkout flow's read-then-write semantics depend on it.
func (r *ProductRepositoryPG) SetStock(ctx context.Context, id string, stock int) error {
	run := dbcommon.GetRunner(ctx, r.DB)
	res, err := run.ExecContext(ctx, `UPDATE products SET stock = $2 WHERE id = $1`, strings.TrimSpace(id), stock)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return productdom.ErrNotFound
	}
	return nil
}

// ========================
// Scan helpers
// ========================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (productdom.Product, error) {
	var (
		p          productdom.Product
		sku        sql.NullString
		categoryID sql.NullString
	)
	if err := row.Scan(&p.ID, &sku, &p.Name, &p.SalePrice, &p.Stock, &categoryID, &p.CreatedAt); err != nil {
		return productdom.Product{}, err
	}
	if sku.Valid {
		v := sku.String
		p.SKU = &v
	}
	if categoryID.Valid {
		v := categoryID.String
		p.CategoryID = &v
	}
	return p, nil
}
