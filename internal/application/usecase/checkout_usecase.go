// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	cartdom "tiendapos/internal/domain/cart"
	saledom "tiendapos/internal/domain/sale"
)

// StockStore is the outbound port for the stock-adjustment step. It is the
// subset of product.Repository the checkout needs: an independent read and an
// independent write, no compare-and-swap. Concurrent commits touching the
// same product therefore race last-writer-wins; that hazard is accepted (see
// repository_port.go in the product domain).
type StockStore interface {
	GetStock(ctx context.Context, productID string) (int, error)
	SetStock(ctx context.Context, productID string, stock int) error
}

// SaleWriter is the outbound port for steps 1 and 2 of the commit sequence.
type SaleWriter interface {
	CreateHeader(ctx context.Context, total int, method saledom.Method, createdAt time.Time) (string, error)
	CreateLines(ctx context.Context, saleID string, lines []saledom.Line) error
}

var (
	ErrCheckoutSalesMissing = errors.New("checkout: sale writer is not configured")
	ErrCheckoutStockMissing = errors.New("checkout: stock store is not configured")
	ErrEmptyCart            = errors.New("checkout: cart is empty")
	ErrCommitInFlight       = errors.New("checkout: a commit for this terminal is already in flight")
)

// CheckoutUsecase turns a finalized cart plus a payment method into durable
// sale records and adjusts inventory.
//
// The three steps run strictly in order with no transaction, no retry and no
// compensation: a failure after step 1 leaves an orphan header, a failure
// inside step 3 leaves some stocks decremented and others untouched. The
// caller sees only the final error and must treat the sale as
// possibly-partially-committed (inspect the sales log before retrying).
type CheckoutUsecase struct {
	sales SaleWriter
	stock StockStore
	now   func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewCheckoutUsecase(sales SaleWriter, stock StockStore) *CheckoutUsecase {
	return &CheckoutUsecase{
		sales:    sales,
		stock:    stock,
		now:      time.Now,
		inFlight: map[string]struct{}{},
	}
}

// Commit performs the sale-commit sequence for one terminal:
//
//  1. insert the sale header; on failure abort, nothing else is attempted
//  2. insert one line per cart line, prices as the cart held them
//  3. per distinct product: read current stock, write back stock - qty sold
//
// While a commit for terminalID is in flight a second call fails fast with
// ErrCommitInFlight; the terminal must wait for resolution before retrying.
func (u *CheckoutUsecase) Commit(ctx context.Context, terminalID string, c *cartdom.Cart, method saledom.Method) (saledom.Header, error) {
	if u.sales == nil {
		return saledom.Header{}, ErrCheckoutSalesMissing
	}
	if u.stock == nil {
		return saledom.Header{}, ErrCheckoutStockMissing
	}

	tid := strings.TrimSpace(terminalID)
	if c == nil || c.IsEmpty() {
		return saledom.Header{}, ErrEmptyCart
	}

	lines := make([]saledom.Line, 0, len(c.Lines()))
	for _, ln := range c.Lines() {
		sl, err := saledom.NewLine(ln.Product.ID, ln.Qty, ln.Product.UnitPrice)
		if err != nil {
			return saledom.Header{}, err
		}
		lines = append(lines, sl)
	}

	total := c.Total()
	if err := saledom.ValidateCommit(total, method, c.Tax(), lines); err != nil {
		return saledom.Header{}, err
	}

	if !u.acquire(tid) {
		return saledom.Header{}, ErrCommitInFlight
	}
	defer u.release(tid)

	now := u.now().UTC()

	// 1) sale header. All later records reference its id.
	saleID, err := u.sales.CreateHeader(ctx, total, method, now)
	if err != nil {
		return saledom.Header{}, fmt.Errorf("checkout: create sale header: %w", err)
	}

	header := saledom.Header{
		ID:        saleID,
		Total:     total,
		Method:    method,
		CreatedAt: now,
	}

	// 2) sale lines. The header already exists; on failure it stays as an
	// orphan and the error is surfaced as-is.
	if err := u.sales.CreateLines(ctx, saleID, lines); err != nil {
		log.Printf("[checkout_uc] WARN: sale lines failed, header is orphaned saleId=%s err=%v", saleID, err)
		return saledom.Header{}, fmt.Errorf("checkout: create sale lines: %w", err)
	}

	// 3) stock adjustment, one independent read-then-write per product.
	// No ordering guarantee across products; the per-product subtraction uses
	// the value read here, not anything captured earlier in the session.
	for _, ln := range lines {
		current, err := u.stock.GetStock(ctx, ln.ProductID)
		if err != nil {
			log.Printf("[checkout_uc] WARN: stock read failed mid-commit saleId=%s productId=%s err=%v", saleID, ln.ProductID, err)
			return saledom.Header{}, fmt.Errorf("checkout: read stock for %s: %w", ln.ProductID, err)
		}
		if err := u.stock.SetStock(ctx, ln.ProductID, current-ln.Qty); err != nil {
			log.Printf("[checkout_uc] WARN: stock write failed mid-commit saleId=%s productId=%s err=%v", saleID, ln.ProductID, err)
			return saledom.Header{}, fmt.Errorf("checkout: write stock for %s: %w", ln.ProductID, err)
		}
	}

	log.Printf("[checkout_uc] OK: sale committed saleId=%s terminal=%s method=%s total=%d items=%d",
		saleID, tid, method, total, c.ItemCount(),
	)
	return header, nil
}

func (u *CheckoutUsecase) acquire(terminalID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inFlight[terminalID]; busy {
		return false
	}
	u.inFlight[terminalID] = struct{}{}
	return true
}

func (u *CheckoutUsecase) release(terminalID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inFlight, terminalID)
}
