// internal/application/usecase/sale_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	saledom "tiendapos/internal/domain/sale"
)

var ErrSaleRepoMissing = errors.New("sales: repository is not configured")

// DefaultRecentSalesLimit caps the sales log page, matching the register's
// recent-transactions view.
const DefaultRecentSalesLimit = 20

// SaleUsecase serves the sales log (read-only; sales are written by the
// checkout usecase and immutable afterwards).
type SaleUsecase struct {
	repo saledom.Repository
}

func NewSaleUsecase(repo saledom.Repository) *SaleUsecase {
	return &SaleUsecase{repo: repo}
}

func (u *SaleUsecase) GetByID(ctx context.Context, id string) (saledom.Sale, error) {
	if u.repo == nil {
		return saledom.Sale{}, ErrSaleRepoMissing
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return saledom.Sale{}, saledom.ErrInvalidID
	}
	return u.repo.GetByID(ctx, id)
}

// Recent returns up to limit sales, newest first, lines included.
// limit <= 0 or above the default cap falls back to the cap.
func (u *SaleUsecase) Recent(ctx context.Context, limit int) ([]saledom.Sale, error) {
	if u.repo == nil {
		return nil, ErrSaleRepoMissing
	}
	if limit <= 0 || limit > DefaultRecentSalesLimit {
		limit = DefaultRecentSalesLimit
	}
	return u.repo.ListRecent(ctx, limit)
}
