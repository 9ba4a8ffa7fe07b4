// internal/adapters/out/db/category_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dbcommon "tiendapos/internal/adapters/out/db/common"
	categorydom "tiendapos/internal/domain/category"
)

type CategoryRepositoryPG struct {
	DB *sql.DB
}

func NewCategoryRepositoryPG(db *sql.DB) *CategoryRepositoryPG {
	return &CategoryRepositoryPG{DB: db}
}

func (r *CategoryRepositoryPG) List(ctx context.Context) ([]categorydom.Category, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT id, name, created_at
FROM categories
ORDER BY name ASC`
	rows, err := run.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]categorydom.Category, 0, 16)
	for rows.Next() {
		var c categorydom.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CategoryRepositoryPG) GetByID(ctx context.Context, id string) (categorydom.Category, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	var c categorydom.Category
	err := run.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`,
		strings.TrimSpace(id),
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return categorydom.Category{}, categorydom.ErrNotFound
		}
		return categorydom.Category{}, err
	}
	return c, nil
}

func (r *CategoryRepositoryPG) Create(ctx context.Context, c categorydom.Category) (categorydom.Category, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	_, err := run.ExecContext(ctx,
		`INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.CreatedAt,
	)
	if err != nil {
		return categorydom.Category{}, err
	}
	return c, nil
}

func (r *CategoryRepositoryPG) Delete(ctx context.Context, id string) error {
	run := dbcommon.GetRunner(ctx, r.DB)
	res, err := run.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return categorydom.ErrNotFound
	}
	return nil
}
