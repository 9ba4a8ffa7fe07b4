// internal/domain/cart/entity.go
package cart

// TaxRatePercent is the VAT applied on the cart subtotal (IVA 19%).
const TaxRatePercent = 19

// ProductRef is the product snapshot captured when a line is added.
// UnitPrice is in minor currency units and is frozen at add time; a price
// change in the catalog never alters an in-progress cart.
type ProductRef struct {
	ID        string `json:"id"`
	SKU       string `json:"sku,omitempty"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
}

// Line is one line item. Uniqueness is defined by Product.ID; the aggregate
// never holds two lines for the same product and never holds Qty <= 0.
type Line struct {
	Product ProductRef `json:"product"`
	Qty     int        `json:"qty"`
}

// Cart accumulates the in-progress sale for one POS terminal.
// Pure state transitions, no I/O; every operation is defined for every state
// and none of them can fail. Derived totals are recomputed on each call.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{lines: []Line{}}
}

// Restore rebuilds a cart from persisted line snapshots (e.g. the terminal
// cart store). Lines with qty <= 0 or an empty product id are dropped;
// duplicate product ids are merged, first occurrence keeps its position.
func Restore(lines []Line) *Cart {
	c := New()
	for _, ln := range lines {
		if ln.Product.ID == "" || ln.Qty <= 0 {
			continue
		}
		if i := c.indexOf(ln.Product.ID); i >= 0 {
			c.lines[i].Qty += ln.Qty
			continue
		}
		c.lines = append(c.lines, ln)
	}
	return c
}

// Add appends a new line with qty 1, or increments the existing line for the
// same product id by 1. Product validity is the caller's concern.
func (c *Cart) Add(p ProductRef) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.lines[i].Qty++
		return
	}
	c.lines = append(c.lines, Line{Product: p, Qty: 1})
}

// Remove deletes the line for productID. No-op if absent.
func (c *Cart) Remove(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity sets the line's quantity. qty <= 0 removes the line, so a
// zero-quantity line can never exist. No-op if the product is absent.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].Qty = qty
	}
}

// Clear empties all lines. Idempotent.
func (c *Cart) Clear() {
	c.lines = []Line{}
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, ln := range c.lines {
		n += ln.Qty
	}
	return n
}

// Subtotal is the exact sum of qty * unit price over current lines.
func (c *Cart) Subtotal() int {
	sum := 0
	for _, ln := range c.lines {
		sum += ln.Qty * ln.Product.UnitPrice
	}
	return sum
}

// Tax is the 19% VAT on the subtotal, rounded half-up to the nearest minor
// unit. Half-up matches the original register behavior and is the documented
// rule for this codebase.
func (c *Cart) Tax() int {
	return RoundHalfUpPercent(c.Subtotal(), TaxRatePercent)
}

// Total is Subtotal + Tax, exactly.
func (c *Cart) Total() int {
	return c.Subtotal() + c.Tax()
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// RoundHalfUpPercent returns amount * pct%, rounded half-up.
// amount must be non-negative (cart subtotals always are).
func RoundHalfUpPercent(amount, pct int) int {
	return (amount*pct + 50) / 100
}
