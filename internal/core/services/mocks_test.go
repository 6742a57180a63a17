package services_test

import (
	"context"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashbook_app/internal/events"
	"github.com/stretchr/testify/mock"
)

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindTenantByCode(ctx context.Context, code string) (*domain.Tenant, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenantName(ctx context.Context, tenantID string, name string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) DeleteTenant(ctx context.Context, tenantID string) (bool, error) {
	args := m.Called(ctx, tenantID)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.TenantRepositoryFacade = (*MockTenantRepository)(nil)

// --- Mock CashEntryRepository ---
type MockCashEntryRepository struct {
	mock.Mock
}

func (m *MockCashEntryRepository) FindCashEntryByID(ctx context.Context, tenantID, entryID string) (*domain.CashEntry, error) {
	args := m.Called(ctx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashEntry), args.Error(1)
}

func (m *MockCashEntryRepository) ListCashEntriesByTenant(ctx context.Context, tenantID string) ([]domain.CashEntry, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashEntry), args.Error(1)
}

func (m *MockCashEntryRepository) ListCashEntriesByPeriod(ctx context.Context, tenantID string, period domain.Period) ([]domain.CashEntry, error) {
	args := m.Called(ctx, tenantID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashEntry), args.Error(1)
}

func (m *MockCashEntryRepository) ListCashEntriesFiltered(ctx context.Context, tenantID string, filter domain.EntryFilter) (*domain.EntryPage, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryPage), args.Error(1)
}

func (m *MockCashEntryRepository) CountCashEntriesByTenant(ctx context.Context, tenantID string) (int, error) {
	args := m.Called(ctx, tenantID)
	return args.Int(0), args.Error(1)
}

func (m *MockCashEntryRepository) SaveCashEntry(ctx context.Context, entry domain.CashEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

var _ portsrepo.CashEntryRepositoryFacade = (*MockCashEntryRepository)(nil)

// --- Mock Publisher ---
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

var _ events.Publisher = (*MockPublisher)(nil)

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e events.Event) bool { return e.Type == eventType })
}
