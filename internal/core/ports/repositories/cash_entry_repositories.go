package repositories

import (
	"context"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
)

// CashEntryReader defines tenant-scoped read operations on the ledger.
// Listings are ordered by entry date, then creation time, then id.
type CashEntryReader interface {
	// FindCashEntryByID returns apperrors.ErrNotFound when the entry does
	// not exist for that tenant.
	FindCashEntryByID(ctx context.Context, tenantID, entryID string) (*domain.CashEntry, error)

	ListCashEntriesByTenant(ctx context.Context, tenantID string) ([]domain.CashEntry, error)

	// ListCashEntriesByPeriod returns the entries dated within the month,
	// first and last day inclusive.
	ListCashEntriesByPeriod(ctx context.Context, tenantID string, period domain.Period) ([]domain.CashEntry, error)

	// ListCashEntriesFiltered applies date bounds and offset paging and
	// reports the total number of matches before paging.
	ListCashEntriesFiltered(ctx context.Context, tenantID string, filter domain.EntryFilter) (*domain.EntryPage, error)

	CountCashEntriesByTenant(ctx context.Context, tenantID string) (int, error)
}

// CashEntryWriter appends to the ledger. There is no update or delete.
type CashEntryWriter interface {
	// SaveCashEntry persists the entry. apperrors.ErrNotFound is returned
	// when the owning tenant no longer exists at write time.
	SaveCashEntry(ctx context.Context, entry domain.CashEntry) error
}

// CashEntryRepositoryFacade combines all ledger repository interfaces
type CashEntryRepositoryFacade interface {
	CashEntryReader
	CashEntryWriter
}
