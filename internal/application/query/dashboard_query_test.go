// internal/application/query/dashboard_query_test.go
package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdom "tiendapos/internal/domain/product"
	saledom "tiendapos/internal/domain/sale"
)

type stubSales struct {
	sales []saledom.Sale
	err   error
}

func (s *stubSales) Recent(_ context.Context, _ int) ([]saledom.Sale, error) {
	return s.sales, s.err
}

type stubProducts struct {
	products []productdom.Product
}

func (s *stubProducts) ListProducts(_ context.Context) []productdom.Product {
	return s.products
}

func saleAt(id string, total int, createdAt time.Time, qtys ...int) saledom.Sale {
	s := saledom.Sale{Header: saledom.Header{ID: id, Total: total, Method: saledom.MethodCash, CreatedAt: createdAt}}
	for i, q := range qtys {
		s.Lines = append(s.Lines, saledom.Line{ID: id + "-l" + string(rune('1'+i)), SaleID: id, ProductID: "p1", Qty: q, UnitPrice: 100})
	}
	return s
}

func TestSummarizeCountsOnlyToday(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	sales := &stubSales{sales: []saledom.Sale{
		saleAt("s1", 7735, now.Add(-time.Hour), 2, 1),
		saleAt("s2", 1190, now.Add(-2*time.Hour), 1),
		saleAt("s3", 5000, now.Add(-30*time.Hour), 4), // yesterday
	}}
	q := NewDashboardQuery(sales, &stubProducts{})
	q.now = func() time.Time { return now }

	sum, err := q.Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8925, sum.TodayRevenue)
	assert.Equal(t, 2, sum.TodaySales)
	assert.Equal(t, 4, sum.TodayItemsSold)
	assert.Len(t, sum.Recent, 3)
}

func TestSummarizeFlagsLowStock(t *testing.T) {
	products := &stubProducts{products: []productdom.Product{
		{ID: "p1", Name: "Agua", Stock: 3},
		{ID: "p2", Name: "Snack", Stock: 5},
		{ID: "p3", Name: "Detergente", Stock: 6},
	}}
	q := NewDashboardQuery(&stubSales{}, products)

	sum, err := q.Summarize(context.Background())
	require.NoError(t, err)

	require.Len(t, sum.LowStock, 2)
	assert.Equal(t, "Agua", sum.LowStock[0].Name)
	assert.Equal(t, "Snack", sum.LowStock[1].Name)
}

func TestSummarizePropagatesSalesError(t *testing.T) {
	q := NewDashboardQuery(&stubSales{err: errors.New("db down")}, &stubProducts{})

	_, err := q.Summarize(context.Background())
	assert.Error(t, err)
}

func TestSummarizeEmptyDayIsAllZeroes(t *testing.T) {
	q := NewDashboardQuery(&stubSales{}, &stubProducts{})

	sum, err := q.Summarize(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.TodayRevenue)
	assert.Zero(t, sum.TodaySales)
	assert.Zero(t, sum.TodayItemsSold)
	assert.NotNil(t, sum.LowStock)
}
