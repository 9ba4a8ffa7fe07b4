// internal/application/query/dashboard_query.go
package query

import (
	"context"
	"time"

	productdom "tiendapos/internal/domain/product"
	saledom "tiendapos/internal/domain/sale"
)

// DefaultLowStockThreshold flags products running out on the dashboard.
const DefaultLowStockThreshold = 5

// Summary is the dashboard read model: trivial aggregation over rows the
// pages already fetch, nothing more.
type Summary struct {
	TodayRevenue   int                 `json:"todayRevenue"`
	TodaySales     int                 `json:"todaySales"`
	TodayItemsSold int                 `json:"todayItemsSold"`
	LowStock       []productdom.Product `json:"lowStock"`
	Recent         []saledom.Sale      `json:"recent"`
}

// SalesReader is the slice of the sale usecase the dashboard needs.
type SalesReader interface {
	Recent(ctx context.Context, limit int) ([]saledom.Sale, error)
}

// ProductsReader is the slice of the catalog usecase the dashboard needs.
type ProductsReader interface {
	ListProducts(ctx context.Context) []productdom.Product
}

// DashboardQuery assembles the staff dashboard.
type DashboardQuery struct {
	sales     SalesReader
	products  ProductsReader
	threshold int
	now       func() time.Time
}

func NewDashboardQuery(sales SalesReader, products ProductsReader) *DashboardQuery {
	return &DashboardQuery{
		sales:     sales,
		products:  products,
		threshold: DefaultLowStockThreshold,
		now:       time.Now,
	}
}

// Summarize fetches recent sales and the product list, then aggregates
// in memory: today's revenue/sale/item counts and the low-stock list.
func (q *DashboardQuery) Summarize(ctx context.Context) (Summary, error) {
	recent, err := q.sales.Recent(ctx, 0)
	if err != nil {
		return Summary{}, err
	}

	out := Summary{
		LowStock: []productdom.Product{},
		Recent:   recent,
	}

	today := q.now().UTC().Truncate(24 * time.Hour)
	for _, s := range recent {
		if s.CreatedAt.UTC().Before(today) {
			continue
		}
		out.TodayRevenue += s.Total
		out.TodaySales++
		for _, ln := range s.Lines {
			out.TodayItemsSold += ln.Qty
		}
	}

	for _, p := range q.products.ListProducts(ctx) {
		if p.Stock <= q.threshold {
			out.LowStock = append(out.LowStock, p)
		}
	}
	return out, nil
}
