// internal/application/usecase/fakes_test.go
//
// In-memory fakes shared by the usecase tests in this package.
package usecase

import (
	"context"
	"sort"
	"strconv"
	"time"

	cartdom "tiendapos/internal/domain/cart"
	categorydom "tiendapos/internal/domain/category"
	productdom "tiendapos/internal/domain/product"
	profiledom "tiendapos/internal/domain/profile"
	saledom "tiendapos/internal/domain/sale"
)

// ----------------------------------------
// product.Repository
// ----------------------------------------

type fakeProductRepo struct {
	byID    map[string]productdom.Product
	listErr error
	getErr  error
}

func newFakeProductRepo(items ...productdom.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: map[string]productdom.Product{}}
	for _, p := range items {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) List(_ context.Context) ([]productdom.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]productdom.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (productdom.Product, error) {
	if r.getErr != nil {
		return productdom.Product{}, r.getErr
	}
	p, ok := r.byID[id]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) Create(_ context.Context, p productdom.Product) (productdom.Product, error) {
	r.byID[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p productdom.Product) (productdom.Product, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return productdom.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeProductRepo) GetStock(_ context.Context, id string) (int, error) {
	p, ok := r.byID[id]
	if !ok {
		return 0, productdom.ErrNotFound
	}
	return p.Stock, nil
}

func (r *fakeProductRepo) SetStock(_ context.Context, id string, stock int) error {
	p, ok := r.byID[id]
	if !ok {
		return productdom.ErrNotFound
	}
	p.Stock = stock
	r.byID[id] = p
	return nil
}

// ----------------------------------------
// category.Repository
// ----------------------------------------

type fakeCategoryRepo struct {
	byID    map[string]categorydom.Category
	listErr error
}

func newFakeCategoryRepo(items ...categorydom.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{byID: map[string]categorydom.Category{}}
	for _, c := range items {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]categorydom.Category, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]categorydom.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (categorydom.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return categorydom.Category{}, categorydom.ErrNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, c categorydom.Category) (categorydom.Category, error) {
	r.byID[c.ID] = c
	return c, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// ----------------------------------------
// ProductListCache
// ----------------------------------------

type fakeCache struct {
	cached      []productdom.Product
	has         bool
	sets        int
	invalidates int
}

func (c *fakeCache) Get(_ context.Context) ([]productdom.Product, bool) {
	return c.cached, c.has
}

func (c *fakeCache) Set(_ context.Context, products []productdom.Product) {
	c.cached = products
	c.has = true
	c.sets++
}

func (c *fakeCache) Invalidate(_ context.Context) {
	c.cached = nil
	c.has = false
	c.invalidates++
}

// ----------------------------------------
// cart.Store
// ----------------------------------------

type fakeCartStore struct {
	byTerminal map[string][]cartdom.Line
	getErr     error
	saveErr    error
	deletes    int
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{byTerminal: map[string][]cartdom.Line{}}
}

func (s *fakeCartStore) GetByTerminalID(_ context.Context, terminalID string) (*cartdom.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	lines, ok := s.byTerminal[terminalID]
	if !ok {
		return nil, nil
	}
	return cartdom.Restore(lines), nil
}

func (s *fakeCartStore) Save(_ context.Context, terminalID string, c *cartdom.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.byTerminal[terminalID] = c.Lines()
	return nil
}

func (s *fakeCartStore) DeleteByTerminalID(_ context.Context, terminalID string) error {
	delete(s.byTerminal, terminalID)
	s.deletes++
	return nil
}

// ----------------------------------------
// sale.Repository (reads)
// ----------------------------------------

type fakeSaleRepo struct {
	sales       []saledom.Sale
	lastLimit   int
	listErr     error
	getErr      error
	nextSaleSeq int
}

func (r *fakeSaleRepo) CreateHeader(_ context.Context, total int, method saledom.Method, createdAt time.Time) (string, error) {
	r.nextSaleSeq++
	id := "sale-" + strconv.Itoa(r.nextSaleSeq)
	r.sales = append([]saledom.Sale{{Header: saledom.Header{ID: id, Total: total, Method: method, CreatedAt: createdAt}}}, r.sales...)
	return id, nil
}

func (r *fakeSaleRepo) CreateLines(_ context.Context, saleID string, lines []saledom.Line) error {
	for i := range r.sales {
		if r.sales[i].ID == saleID {
			r.sales[i].Lines = lines
			return nil
		}
	}
	return saledom.ErrNotFound
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (saledom.Sale, error) {
	if r.getErr != nil {
		return saledom.Sale{}, r.getErr
	}
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return saledom.Sale{}, saledom.ErrNotFound
}

func (r *fakeSaleRepo) ListRecent(_ context.Context, limit int) ([]saledom.Sale, error) {
	r.lastLimit = limit
	if r.listErr != nil {
		return nil, r.listErr
	}
	if limit > len(r.sales) {
		limit = len(r.sales)
	}
	return r.sales[:limit], nil
}

// ----------------------------------------
// AuthAdmin / Mailer / profile.Repository
// ----------------------------------------

type fakeAuthAdmin struct {
	created   []string
	deleted   []string
	createErr error
	nextUID   int
}

func (a *fakeAuthAdmin) CreateUser(_ context.Context, email, _, _ string, _ profiledom.Role) (string, error) {
	if a.createErr != nil {
		return "", a.createErr
	}
	a.nextUID++
	uid := "uid-" + strconv.Itoa(a.nextUID)
	a.created = append(a.created, email)
	return uid, nil
}

func (a *fakeAuthAdmin) DeleteUser(_ context.Context, uid string) error {
	a.deleted = append(a.deleted, uid)
	return nil
}

type fakeMailer struct {
	sent    []string
	sendErr error
}

func (m *fakeMailer) Send(_ context.Context, _, to, _, _ string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, to)
	return nil
}

type fakeProfileRepo struct {
	byID      map[string]profiledom.Profile
	createErr error
}

func newFakeProfileRepo(items ...profiledom.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{byID: map[string]profiledom.Profile{}}
	for _, p := range items {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) List(_ context.Context) ([]profiledom.Profile, error) {
	out := make([]profiledom.Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (profiledom.Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return profiledom.Profile{}, profiledom.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, p profiledom.Profile) (profiledom.Profile, error) {
	if r.createErr != nil {
		return profiledom.Profile{}, r.createErr
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}
