// internal/adapters/out/db/sale_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	dbcommon "tiendapos/internal/adapters/out/db/common"
	saledom "tiendapos/internal/domain/sale"
)

type SaleRepositoryPG struct {
	DB *sql.DB
}

func NewSaleRepositoryPG(db *sql.DB) *SaleRepositoryPG {
	return &SaleRepositoryPG{DB: db}
}

// ========================
// Writes (checkout sequence)
// ========================

// CreateHeader inserts the sale row and returns its generated id.
func (r *SaleRepositoryPG) CreateHeader(ctx context.Context, total int, method saledom.Method, createdAt time.Time) (string, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	id := uuid.NewString()
	const q = `
INSERT INTO sales (id, total, payment_method, created_at)
VALUES ($1, $2, $3, $4)`
	if _, err := run.ExecContext(ctx, q, id, total, string(method), createdAt); err != nil {
		return "", err
	}
	return id, nil
}

// CreateLines inserts all lines in one multi-row INSERT. The batch is
// all-or-nothing: either every line of this call lands or none does. There is
// still no atomicity between this call and CreateHeader.
func (r *SaleRepositoryPG) CreateLines(ctx context.Context, saleID string, lines []saledom.Line) error {
	if len(lines) == 0 {
		return saledom.ErrNoLines
	}
	run := dbcommon.GetRunner(ctx, r.DB)

	var sb strings.Builder
	sb.WriteString("INSERT INTO sale_lines (id, sale_id, product_id, quantity, unit_price) VALUES ")
	args := make([]any, 0, len(lines)*5)
	for i, ln := range lines {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 5
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)
		args = append(args, uuid.NewString(), saleID, ln.ProductID, ln.Qty, ln.UnitPrice)
	}

	_, err := run.ExecContext(ctx, sb.String(), args...)
	return err
}

// ========================
// Reads (sales log)
// ========================

func (r *SaleRepositoryPG) GetByID(ctx context.Context, id string) (saledom.Sale, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT id, total, payment_method, created_at
FROM sales
WHERE id = $1`
	var s saledom.Sale
	var method string
	err := run.QueryRowContext(ctx, q, strings.TrimSpace(id)).Scan(&s.ID, &s.Total, &method, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return saledom.Sale{}, saledom.ErrNotFound
		}
		return saledom.Sale{}, err
	}
	s.Method = saledom.Method(method)

	lines, err := r.linesFor(ctx, []string{s.ID})
	if err != nil {
		return saledom.Sale{}, err
	}
	s.Lines = lines[s.ID]
	return s, nil
}

func (r *SaleRepositoryPG) ListRecent(ctx context.Context, limit int) ([]saledom.Sale, error) {
	if limit <= 0 {
		limit = 20
	}
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT id, total, payment_method, created_at
FROM sales
ORDER BY created_at DESC
LIMIT $1`
	rows, err := run.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]saledom.Sale, 0, limit)
	ids := make([]string, 0, limit)
	for rows.Next() {
		var s saledom.Sale
		var method string
		if err := rows.Scan(&s.ID, &s.Total, &method, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Method = saledom.Method(method)
		s.Lines = []saledom.Line{}
		sales = append(sales, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return sales, nil
	}

	byID, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if lns, ok := byID[sales[i].ID]; ok {
			sales[i].Lines = lns
		}
	}
	return sales, nil
}

// linesFor loads lines for a set of sale ids, product name/sku joined.
func (r *SaleRepositoryPG) linesFor(ctx context.Context, saleIDs []string) (map[string][]saledom.Line, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	placeholders := make([]string, len(saleIDs))
	args := make([]any, len(saleIDs))
	for i, id := range saleIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := fmt.Sprintf(`
SELECT l.id, l.sale_id, l.product_id, l.quantity, l.unit_price, p.name, p.sku
FROM sale_lines l
JOIN products p ON p.id = l.product_id
WHERE l.sale_id IN (%s)
ORDER BY l.id ASC`, strings.Join(placeholders, ", "))

	rows, err := run.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]saledom.Line{}
	for rows.Next() {
		var ln saledom.Line
		var sku sql.NullString
		if err := rows.Scan(&ln.ID, &ln.SaleID, &ln.ProductID, &ln.Qty, &ln.UnitPrice, &ln.ProductName, &sku); err != nil {
			return nil, err
		}
		if sku.Valid {
			v := sku.String
			ln.ProductSKU = &v
		}
		out[ln.SaleID] = append(out[ln.SaleID], ln)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
