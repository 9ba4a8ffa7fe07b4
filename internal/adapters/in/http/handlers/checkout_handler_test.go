// internal/adapters/in/http/handlers/checkout_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiendapos/internal/adapters/in/http/middleware"
	"tiendapos/internal/application/usecase"
	cartdom "tiendapos/internal/domain/cart"
	productdom "tiendapos/internal/domain/product"
	profiledom "tiendapos/internal/domain/profile"
	saledom "tiendapos/internal/domain/sale"
)

// ----------------------------------------
// In-memory test doubles
// ----------------------------------------

type memProductRepo struct {
	byID map[string]productdom.Product
}

func (r *memProductRepo) List(_ context.Context) ([]productdom.Product, error) {
	out := make([]productdom.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (productdom.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *memProductRepo) Create(_ context.Context, p productdom.Product) (productdom.Product, error) {
	r.byID[p.ID] = p
	return p, nil
}

func (r *memProductRepo) Update(_ context.Context, p productdom.Product) (productdom.Product, error) {
	r.byID[p.ID] = p
	return p, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memProductRepo) GetStock(_ context.Context, id string) (int, error) {
	p, ok := r.byID[id]
	if !ok {
		return 0, productdom.ErrNotFound
	}
	return p.Stock, nil
}

func (r *memProductRepo) SetStock(_ context.Context, id string, stock int) error {
	p, ok := r.byID[id]
	if !ok {
		return productdom.ErrNotFound
	}
	p.Stock = stock
	r.byID[id] = p
	return nil
}

type memCartStore struct {
	byTerminal map[string][]cartdom.Line
}

func (s *memCartStore) GetByTerminalID(_ context.Context, terminalID string) (*cartdom.Cart, error) {
	lines, ok := s.byTerminal[terminalID]
	if !ok {
		return nil, nil
	}
	return cartdom.Restore(lines), nil
}

func (s *memCartStore) Save(_ context.Context, terminalID string, c *cartdom.Cart) error {
	s.byTerminal[terminalID] = c.Lines()
	return nil
}

func (s *memCartStore) DeleteByTerminalID(_ context.Context, terminalID string) error {
	delete(s.byTerminal, terminalID)
	return nil
}

type saleRecorder struct {
	headers []saledom.Header
	lines   map[string][]saledom.Line
}

func newSaleRecorder() *saleRecorder {
	return &saleRecorder{lines: map[string][]saledom.Line{}}
}

func (r *saleRecorder) CreateHeader(_ context.Context, total int, method saledom.Method, createdAt time.Time) (string, error) {
	id := "sale-" + strconv.Itoa(len(r.headers)+1)
	r.headers = append(r.headers, saledom.Header{ID: id, Total: total, Method: method, CreatedAt: createdAt})
	return id, nil
}

func (r *saleRecorder) CreateLines(_ context.Context, saleID string, lines []saledom.Line) error {
	r.lines[saleID] = lines
	return nil
}

// ----------------------------------------
// Environment
// ----------------------------------------

type checkoutEnv struct {
	products *memProductRepo
	store    *memCartStore
	carts    *usecase.CartUsecase
	sales    *saleRecorder
	handler  http.Handler
}

func newCheckoutEnv(t *testing.T) *checkoutEnv {
	t.Helper()
	products := &memProductRepo{byID: map[string]productdom.Product{
		"p1": {ID: "p1", Name: "Coca-Cola 1.5L", SalePrice: 2500, Stock: 10},
		"p2": {ID: "p2", Name: "Papas fritas", SalePrice: 1500, Stock: 8},
	}}
	store := &memCartStore{byTerminal: map[string][]cartdom.Line{}}
	carts := usecase.NewCartUsecase(store, products)
	sales := newSaleRecorder()
	checkout := usecase.NewCheckoutUsecase(sales, products)

	return &checkoutEnv{
		products: products,
		store:    store,
		carts:    carts,
		sales:    sales,
		handler:  NewCheckoutHandler(checkout, carts),
	}
}

// fill puts 2 x p1 + 1 x p2 into the terminal cart: total 7735 with VAT.
func (e *checkoutEnv) fill(t *testing.T, terminal string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.carts.AddItem(ctx, terminal, "p1")
	require.NoError(t, err)
	_, err = e.carts.AddItem(ctx, terminal, "p1")
	require.NoError(t, err)
	_, err = e.carts.AddItem(ctx, terminal, "p2")
	require.NoError(t, err)
}

func authedRequest(t *testing.T, method, target, body string, role profiledom.Role, terminal string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := r.Context()
	if role != "" {
		ctx = middleware.WithProfile(ctx, profiledom.Profile{ID: "u1", Email: "a@b.cl", Name: "A", Role: role})
	}
	if terminal != "" {
		ctx = middleware.WithTerminalID(ctx, terminal)
	}
	return r.WithContext(ctx)
}

// ----------------------------------------
// Tests
// ----------------------------------------

func TestCheckoutCashWithChange(t *testing.T) {
	env := newCheckoutEnv(t)
	env.fill(t, "t1")

	req := authedRequest(t, http.MethodPost, "/checkout",
		`{"paymentMethod":"cash","cashReceived":10000}`, profiledom.RoleCashier, "t1")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		Sale   saleDTO `json:"sale"`
		Change int     `json:"change"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 7735, out.Sale.Total)
	assert.Equal(t, 2265, out.Change)

	// Sale recorded, stock decremented, cart cleared.
	require.Len(t, env.sales.headers, 1)
	assert.Len(t, env.sales.lines[out.Sale.ID], 2)
	assert.Equal(t, 8, env.products.byID["p1"].Stock)
	assert.Equal(t, 7, env.products.byID["p2"].Stock)
	_, stillThere := env.store.byTerminal["t1"]
	assert.False(t, stillThere)
}

func TestCheckoutCashInsufficient(t *testing.T) {
	env := newCheckoutEnv(t)
	env.fill(t, "t1")

	req := authedRequest(t, http.MethodPost, "/checkout",
		`{"paymentMethod":"cash","cashReceived":7000}`, profiledom.RoleCashier, "t1")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Nothing committed and the cart survives.
	assert.Empty(t, env.sales.headers)
	assert.Equal(t, 10, env.products.byID["p1"].Stock)
	assert.Len(t, env.store.byTerminal["t1"], 2)
}

func TestCheckoutCardIgnoresCashReceived(t *testing.T) {
	env := newCheckoutEnv(t)
	env.fill(t, "t1")

	req := authedRequest(t, http.MethodPost, "/checkout",
		`{"paymentMethod":"card"}`, profiledom.RoleAdmin, "t1")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		Change int `json:"change"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Zero(t, out.Change)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newCheckoutEnv(t)

	req := authedRequest(t, http.MethodPost, "/checkout",
		`{"paymentMethod":"card"}`, profiledom.RoleCashier, "t1")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckoutInvalidMethod(t *testing.T) {
	env := newCheckoutEnv(t)
	env.fill(t, "t1")

	req := authedRequest(t, http.MethodPost, "/checkout",
		`{"paymentMethod":"iou"}`, profiledom.RoleCashier, "t1")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, env.sales.headers)
}

func TestCheckoutRoleGate(t *testing.T) {
	env := newCheckoutEnv(t)
	env.fill(t, "t1")

	// Inventory staff cannot sell.
	req := authedRequest(t, http.MethodPost, "/checkout",
		`{"paymentMethod":"card"}`, profiledom.RoleInventory, "t1")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No profile at all.
	req = authedRequest(t, http.MethodPost, "/checkout",
		`{"paymentMethod":"card"}`, "", "t1")
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCheckoutRequiresTerminalIdentity(t *testing.T) {
	env := newCheckoutEnv(t)

	req := authedRequest(t, http.MethodPost, "/checkout",
		`{"paymentMethod":"card"}`, profiledom.RoleCashier, "")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
