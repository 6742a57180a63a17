package services

import (
	"context"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/SscSPs/cashbook_app/internal/dto"
)

// CashbookReaderSvc defines tenant-scoped ledger queries. Every method takes
// the tenant code as supplied by the client.
type CashbookReaderSvc interface {
	GetCashEntry(ctx context.Context, tenantCode, entryID string) (*domain.CashEntry, error)

	// ListCashEntries returns a filtered page with the unpaged total.
	ListCashEntries(ctx context.Context, tenantCode string, params dto.ListCashEntriesParams) (*domain.EntryPage, error)

	// ListAllCashEntries returns every entry of the tenant in ledger order.
	ListAllCashEntries(ctx context.Context, tenantCode string) ([]domain.CashEntry, error)

	GetMonthlySummary(ctx context.Context, tenantCode string, params dto.SummaryParams) (*domain.MonthlySummary, error)

	GetTotals(ctx context.Context, tenantCode string, params dto.TotalsParams) (*domain.RangeTotals, error)
}

// CashbookWriterSvc appends to the ledger
type CashbookWriterSvc interface {
	CreateCashEntry(ctx context.Context, req dto.CreateCashEntryRequest) (*domain.CashEntry, error)
}

// CashbookSvcFacade combines all cashbook service interfaces
type CashbookSvcFacade interface {
	CashbookReaderSvc
	CashbookWriterSvc
}

// HealthSvc reports the availability of the backing store.
type HealthSvc interface {
	CheckStore(ctx context.Context) error
}
