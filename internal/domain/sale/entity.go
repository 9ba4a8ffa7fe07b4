// internal/domain/sale/entity.go
package sale

import (
	"errors"
	"strings"
	"time"
)

// ========================================
// Types
// ========================================

// Method is the payment method recorded on a sale.
type Method string

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
)

// Header is the sale row. Created exactly once per successful checkout and
// immutable thereafter. Total is in minor currency units and includes VAT.
type Header struct {
	ID        string
	Total     int
	Method    Method
	CreatedAt time.Time
}

// Line is one sale line item. UnitPrice is the price captured from the cart
// at commit time, not the catalog price at read time.
type Line struct {
	ID        string
	SaleID    string
	ProductID string
	Qty       int
	UnitPrice int

	// Joined fields, populated by read queries only.
	ProductName string
	ProductSKU  *string
}

// Sale is a header with its lines (read model for the sales log).
type Sale struct {
	Header
	Lines []Line
}

// ========================================
// Errors
// ========================================

var (
	ErrNotFound       = errors.New("sale: not found")
	ErrInvalidID      = errors.New("sale: invalid id")
	ErrInvalidMethod  = errors.New("sale: invalid payment method")
	ErrNoLines        = errors.New("sale: no lines")
	ErrInvalidLine    = errors.New("sale: invalid line")
	ErrTotalMismatch  = errors.New("sale: total does not cover line subtotal")
	ErrInvalidTotal   = errors.New("sale: invalid total")
)

// ========================================
// Constructors
// ========================================

// ParseMethod normalizes and validates a payment method string.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodCash:
		return MethodCash, nil
	case MethodCard:
		return MethodCard, nil
	case MethodTransfer:
		return MethodTransfer, nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) Valid() bool {
	_, err := ParseMethod(string(m))
	return err == nil
}

// NewLine builds a validated line item.
func NewLine(productID string, qty, unitPrice int) (Line, error) {
	ln := Line{
		ProductID: strings.TrimSpace(productID),
		Qty:       qty,
		UnitPrice: unitPrice,
	}
	if ln.ProductID == "" || ln.Qty <= 0 || ln.UnitPrice < 0 {
		return Line{}, ErrInvalidLine
	}
	return ln, nil
}

// ========================================
// Derived values / validation
// ========================================

// LinesSubtotal is the exact sum of qty * unit price over the lines.
func LinesSubtotal(lines []Line) int {
	sum := 0
	for _, ln := range lines {
		sum += ln.Qty * ln.UnitPrice
	}
	return sum
}

// ValidateCommit checks the record set produced by one checkout:
// a valid method, at least one valid line, and a total that equals the line
// subtotal plus the given tax.
func ValidateCommit(total int, method Method, tax int, lines []Line) error {
	if !method.Valid() {
		return ErrInvalidMethod
	}
	if len(lines) == 0 {
		return ErrNoLines
	}
	for _, ln := range lines {
		if strings.TrimSpace(ln.ProductID) == "" || ln.Qty <= 0 || ln.UnitPrice < 0 {
			return ErrInvalidLine
		}
	}
	if total < 0 || tax < 0 {
		return ErrInvalidTotal
	}
	if total != LinesSubtotal(lines)+tax {
		return ErrTotalMismatch
	}
	return nil
}

// SalesTableDDL defines the SQL for the sales table migration.
const SalesTableDDL = `
-- Migration: Initialize Sale domain (header)
-- Mirrors internal/domain/sale/entity.go

BEGIN;

CREATE TABLE IF NOT EXISTS sales (
  id             TEXT        PRIMARY KEY,
  total          BIGINT      NOT NULL,
  payment_method TEXT        NOT NULL,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),

  CONSTRAINT chk_sales_total CHECK (total >= 0),
  CONSTRAINT chk_sales_method CHECK (payment_method IN ('cash','card','transfer'))
);

CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales(created_at DESC);

COMMIT;
`

// SaleLinesTableDDL defines the SQL for the sale_lines table migration.
const SaleLinesTableDDL = `
-- Migration: Initialize Sale domain (lines)
-- Mirrors internal/domain/sale/entity.go

BEGIN;

CREATE TABLE IF NOT EXISTS sale_lines (
  id         TEXT    PRIMARY KEY,
  sale_id    TEXT    NOT NULL REFERENCES sales(id),
  product_id TEXT    NOT NULL REFERENCES products(id),
  quantity   INTEGER NOT NULL,
  unit_price BIGINT  NOT NULL,

  CONSTRAINT chk_sale_lines_qty CHECK (quantity > 0),
  CONSTRAINT chk_sale_lines_price CHECK (unit_price >= 0)
);

CREATE INDEX IF NOT EXISTS idx_sale_lines_sale_id ON sale_lines(sale_id);

COMMIT;
`
