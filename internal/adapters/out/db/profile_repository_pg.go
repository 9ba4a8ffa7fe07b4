// internal/adapters/out/db/profile_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dbcommon "tiendapos/internal/adapters/out/db/common"
	profiledom "tiendapos/internal/domain/profile"
)

type ProfileRepositoryPG struct {
	DB *sql.DB
}

func NewProfileRepositoryPG(db *sql.DB) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{DB: db}
}

func (r *ProfileRepositoryPG) List(ctx context.Context) ([]profiledom.Profile, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT id, email, name, role, created_at
FROM profiles
ORDER BY created_at DESC`
	rows, err := run.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]profiledom.Profile, 0, 16)
	for rows.Next() {
		var p profiledom.Profile
		var role string
		if err := rows.Scan(&p.ID, &p.Email, &p.Name, &role, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Role = profiledom.Role(role)
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ProfileRepositoryPG) GetByID(ctx context.Context, id string) (profiledom.Profile, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	var p profiledom.Profile
	var role string
	err := run.QueryRowContext(ctx,
		`SELECT id, email, name, role, created_at FROM profiles WHERE id = $1`,
		strings.TrimSpace(id),
	).Scan(&p.ID, &p.Email, &p.Name, &role, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiledom.Profile{}, profiledom.ErrNotFound
		}
		return profiledom.Profile{}, err
	}
	p.Role = profiledom.Role(role)
	return p, nil
}

func (r *ProfileRepositoryPG) Create(ctx context.Context, p profiledom.Profile) (profiledom.Profile, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	_, err := run.ExecContext(ctx,
		`INSERT INTO profiles (id, email, name, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Email, p.Name, string(p.Role), p.CreatedAt,
	)
	if err != nil {
		return profiledom.Profile{}, err
	}
	return p, nil
}

func (r *ProfileRepositoryPG) Delete(ctx context.Context, id string) error {
	run := dbcommon.GetRunner(ctx, r.DB)
	res, err := run.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return profiledom.ErrNotFound
	}
	return nil
}
