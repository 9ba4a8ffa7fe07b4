// internal/adapters/out/db/common/sqlutil.go
package dbcommon

import (
	"context"
	"database/sql"
)

// Runner abstracts *sql.DB / *sql.Tx so repositories run unchanged inside or
// outside a transaction.
type Runner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// WithTx returns a context carrying tx; GetRunner resolves it in repos.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetRunner returns the transaction carried by ctx, or db when none is.
func GetRunner(ctx context.Context, db *sql.DB) Runner {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return db
}

// NormalizePage clamps page number / page size and derives the offset.
func NormalizePage(number, perPage, defaultPer, maxPer int) (pageNum, per, offset int) {
	pageNum = number
	if pageNum < 1 {
		pageNum = 1
	}
	per = perPage
	if per <= 0 {
		per = defaultPer
	}
	if maxPer > 0 && per > maxPer {
		per = maxPer
	}
	offset = (pageNum - 1) * per
	return pageNum, per, offset
}

// ComputeTotalPages is ceil(total / perPage), minimum 1 page.
func ComputeTotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}
