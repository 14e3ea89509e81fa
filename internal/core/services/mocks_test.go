package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fish_sales_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- In-memory sale store ---

// memSaleStore serializes transactions with a single mutex, standing in for
// row locks, and stages writes until the transaction function returns nil.
type memSaleStore struct {
	mu          sync.Mutex
	sales       map[string]domain.Sale
	logs        []domain.ActionLog
	updateCalls int

	// beforeUpdate runs inside UpdateSale before the version check.
	beforeUpdate func(stored map[string]domain.Sale, sale domain.Sale)
}

var _ portsrepo.SaleRepositoryWithTx = (*memSaleStore)(nil)

func newMemSaleStore(sales ...domain.Sale) *memSaleStore {
	m := &memSaleStore{sales: make(map[string]domain.Sale)}
	for _, s := range sales {
		m.sales[s.SaleID] = s
	}
	return m
}

func (m *memSaleStore) get(id string) (domain.Sale, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sales[id]
	return s, ok
}

func (m *memSaleStore) actionLogs() []domain.ActionLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ActionLog(nil), m.logs...)
}

func (m *memSaleStore) WithinTx(ctx context.Context, fn func(tx portsrepo.SaleTxStore) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := make(map[string]domain.Sale, len(m.sales))
	for k, v := range m.sales {
		staged[k] = v
	}
	tx := &memTx{store: m, sales: staged}
	if err := fn(tx); err != nil {
		return err
	}
	m.sales = tx.sales
	m.logs = append(m.logs, tx.logs...)
	return nil
}

func (m *memSaleStore) SaveSale(ctx context.Context, sale domain.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sales[sale.SaleID]; exists {
		return apperrors.ErrDuplicate
	}
	m.sales[sale.SaleID] = sale
	return nil
}

func (m *memSaleStore) FindSaleByID(ctx context.Context, companyID, saleID string) (*domain.Sale, error) {
	s, ok := m.get(saleID)
	if !ok || s.CompanyID != companyID {
		return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
	}
	return &s, nil
}

func (m *memSaleStore) ListSales(ctx context.Context, companyID string, filter domain.SaleFilter, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Sale
	for _, s := range m.sales {
		if s.CompanyID != companyID {
			continue
		}
		if filter.FishType != "" && s.FishType != filter.FishType {
			continue
		}
		if filter.ClientName != "" && s.ClientName != filter.ClientName {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil, nil
}

func (m *memSaleStore) ListClientSalesByBalance(ctx context.Context, companyID, clientName string, kind domain.BalanceKind) ([]domain.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Sale
	for _, s := range m.sales {
		if s.CompanyID != companyID || s.ClientName != clientName {
			continue
		}
		if (kind == domain.BalanceDebt && s.IsDebt()) || (kind == domain.BalanceCredit && s.IsCredit()) {
			out = append(out, s)
		}
	}
	return out, nil
}

type memTx struct {
	store *memSaleStore
	sales map[string]domain.Sale
	logs  []domain.ActionLog
}

func (t *memTx) FindSalesForUpdate(ctx context.Context, companyID string, saleIDs []string) (map[string]domain.Sale, error) {
	out := make(map[string]domain.Sale, len(saleIDs))
	for _, id := range saleIDs {
		if s, ok := t.sales[id]; ok && s.CompanyID == companyID {
			out[id] = s
		}
	}
	return out, nil
}

func (t *memTx) UpdateSale(ctx context.Context, sale domain.Sale) error {
	t.store.updateCalls++
	if t.store.beforeUpdate != nil {
		t.store.beforeUpdate(t.sales, sale)
	}
	stored, ok := t.sales[sale.SaleID]
	if !ok || stored.Version != sale.Version {
		return fmt.Errorf("%w: sale %s version %d", apperrors.ErrConflict, sale.SaleID, sale.Version)
	}
	sale.Version++
	t.sales[sale.SaleID] = sale
	return nil
}

func (t *memTx) DeleteSale(ctx context.Context, companyID, saleID string, version int64) error {
	stored, ok := t.sales[saleID]
	if !ok || stored.CompanyID != companyID || stored.Version != version {
		return fmt.Errorf("%w: sale %s version %d", apperrors.ErrConflict, saleID, version)
	}
	delete(t.sales, saleID)
	return nil
}

func (t *memTx) SaveActionLog(ctx context.Context, log domain.ActionLog) error {
	t.logs = append(t.logs, log)
	return nil
}

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetLedgerTotals(ctx context.Context, companyID string, filter domain.SaleFilter) (domain.LedgerTotals, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(domain.LedgerTotals), args.Error(1)
}

func (m *MockReportingRepository) GetFishTypeTotals(ctx context.Context, companyID string, filter domain.SaleFilter) ([]domain.FishTypeTotals, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FishTypeTotals), args.Error(1)
}

func (m *MockReportingRepository) GetClientBoard(ctx context.Context, companyID string, kind domain.BalanceKind) ([]domain.ClientBalance, error) {
	args := m.Called(ctx, companyID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientBalance), args.Error(1)
}

// --- Mock ActionLogReader ---
type MockActionLogRepository struct {
	mock.Mock
}

var _ portsrepo.ActionLogReader = (*MockActionLogRepository)(nil)

func (m *MockActionLogRepository) ListActionLogs(ctx context.Context, companyID string, filter domain.ActionLogFilter, limit int, nextToken *string) ([]domain.ActionLog, *string, error) {
	args := m.Called(ctx, companyID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.ActionLog), returnedNextToken, args.Error(2)
}

// --- Recording observer ---
type recordingObserver struct {
	mu      sync.Mutex
	outcome map[string][]error
}

func (o *recordingObserver) ObserveLedgerOperation(operation string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.outcome == nil {
		o.outcome = make(map[string][]error)
	}
	o.outcome[operation] = append(o.outcome[operation], err)
}
