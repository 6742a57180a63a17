package memory

import (
	"context"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/SscSPs/cashbook_app/internal/utils/pagination"
)

func (s *Store) SaveCashEntry(ctx context.Context, entry domain.CashEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tenants[entry.TenantID]; !ok {
		return apperrors.NewNotFoundError("tenant not found")
	}
	if _, dup := s.entryOwner[entry.EntryID]; dup {
		return apperrors.NewConflictError("cash entry id already exists")
	}

	s.entries[entry.TenantID] = insertSorted(s.entries[entry.TenantID], cloneEntry(entry))
	s.entryOwner[entry.EntryID] = entry.TenantID
	return nil
}

func (s *Store) FindCashEntryByID(ctx context.Context, tenantID, entryID string) (*domain.CashEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.entryOwner[entryID] != tenantID {
		return nil, apperrors.ErrNotFound
	}
	for _, e := range s.entries[tenantID] {
		if e.EntryID == entryID {
			found := cloneEntry(e)
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListCashEntriesByTenant(ctx context.Context, tenantID string) ([]domain.CashEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneEntries(s.entries[tenantID]), nil
}

func (s *Store) ListCashEntriesByPeriod(ctx context.Context, tenantID string, period domain.Period) ([]domain.CashEntry, error) {
	first, last := period.FirstDay(), period.LastDay()
	page, err := s.ListCashEntriesFiltered(ctx, tenantID, domain.EntryFilter{DateFrom: &first, DateTo: &last})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *Store) ListCashEntriesFiltered(ctx context.Context, tenantID string, filter domain.EntryFilter) (*domain.EntryPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.CashEntry, 0)
	for _, e := range s.entries[tenantID] {
		if filter.Matches(e) {
			matched = append(matched, e)
		}
	}

	start, end := pagination.Window(len(matched), filter.Offset, filter.Limit)
	return &domain.EntryPage{Items: cloneEntries(matched[start:end]), Total: len(matched), Offset: start}, nil
}

func (s *Store) CountCashEntriesByTenant(ctx context.Context, tenantID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries[tenantID]), nil
}
