package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v4"

	"elite-gym-console/internal/domain"
	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
)

// memLedgerRepo is a small in-memory ledger used by unit tests.
type memLedgerRepo struct {
	mu      sync.RWMutex
	records []*model.PaymentRecord

	createErr   error // fail every Create
	failOnNth   int   // fail only the nth Create (1-based), 0 = disabled
	createCalls int
}

func newMemLedgerRepo() *memLedgerRepo { return &memLedgerRepo{} }

func (m *memLedgerRepo) Create(ctx context.Context, tx repository.Tx, rec *model.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if m.failOnNth > 0 && m.createCalls == m.failOnNth {
		return domain.ErrOperationFailed
	}
	cp := *rec
	m.records = append(m.records, &cp)
	return nil
}

func (m *memLedgerRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.PaymentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.records {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memLedgerRepo) List(ctx context.Context, tx repository.Tx) ([]*model.PaymentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.PaymentRecord, 0, len(m.records))
	for _, r := range m.records {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memLedgerRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memLedgerRepo) SumByPeriod(ctx context.Context, tx repository.Tx, period string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sum int64
	for _, r := range m.records {
		sum += r.Amount
	}
	return sum, nil
}

func (m *memLedgerRepo) CountByMode(ctx context.Context, tx repository.Tx) (map[model.PaymentMode]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[model.PaymentMode]int)
	for _, r := range m.records {
		out[r.Mode]++
	}
	return out, nil
}

// memClientRepo stores clients keyed by id.
type memClientRepo struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*model.Client

	saveErr error
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{store: make(map[int64]*model.Client)}
}

func (m *memClientRepo) Save(ctx context.Context, tx repository.Tx, c *model.Client) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == 0 {
		m.nextID++
		c.ID = m.nextID
	}
	cp := *c
	m.store[c.ID] = &cp
	return nil
}

func (m *memClientRepo) FindByID(ctx context.Context, tx repository.Tx, id int64) (*model.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memClientRepo) FindByNationalID(ctx context.Context, tx repository.Tx, nationalID string) (*model.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.store {
		if c.NationalID == nationalID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memClientRepo) List(ctx context.Context, tx repository.Tx) ([]*model.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Client, 0, len(m.store))
	for _, c := range m.store {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return strings.Compare(out[i].Surname, out[j].Surname) < 0 })
	return out, nil
}

func (m *memClientRepo) Delete(ctx context.Context, tx repository.Tx, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

// memProductRepo stores products keyed by id.
type memProductRepo struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*model.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{store: make(map[int64]*model.Product)}
}

func (m *memProductRepo) Save(ctx context.Context, tx repository.Tx, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == 0 {
		m.nextID++
		p.ID = m.nextID
	}
	cp := *p
	m.store[p.ID] = &cp
	return nil
}

func (m *memProductRepo) FindByID(ctx context.Context, tx repository.Tx, id int64) (*model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) List(ctx context.Context, tx repository.Tx) ([]*model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Product, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memProductRepo) Delete(ctx context.Context, tx repository.Tx, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *memProductRepo) DecrementStock(ctx context.Context, tx repository.Tx, productID int64, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock < quantity {
		return domain.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

// memSaleRepo stores sales in insertion order.
type memSaleRepo struct {
	mu    sync.RWMutex
	sales []*model.Sale
}

func newMemSaleRepo() *memSaleRepo { return &memSaleRepo{} }

func (m *memSaleRepo) Save(ctx context.Context, tx repository.Tx, s *model.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	cp.Items = append([]model.SaleItem(nil), s.Items...)
	m.sales = append(m.sales, &cp)
	return nil
}

func (m *memSaleRepo) List(ctx context.Context, tx repository.Tx) ([]*model.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Sale, 0, len(m.sales))
	for _, s := range m.sales {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memSaleRepo) SumByPeriod(ctx context.Context, tx repository.Tx, period string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var cutoff time.Time
	now := time.Now()
	switch period {
	case "week":
		cutoff = now.AddDate(0, 0, -7)
	case "month":
		cutoff = now.AddDate(0, -1, 0)
	default:
		cutoff = now.AddDate(-1, 0, 0)
	}
	var sum int64
	for _, s := range m.sales {
		if s.CreatedAt.After(cutoff) {
			sum += s.Total
		}
	}
	return sum, nil
}

func (m *memSaleRepo) TopProducts(ctx context.Context, tx repository.Tx, limit int) ([]repository.ProductUnits, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	units := make(map[int64]int)
	for _, s := range m.sales {
		for _, it := range s.Items {
			units[it.ProductID] += it.Quantity
		}
	}
	out := make([]repository.ProductUnits, 0, len(units))
	for id, u := range units {
		out = append(out, repository.ProductUnits{ProductID: id, Units: u})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Units > out[j].Units })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// mockTxManager runs the callback without a real transaction.
type mockTxManager struct{}

func (m *mockTxManager) WithTx(ctx context.Context, _ pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error {
	return fn(ctx, repository.NoTX)
}
