package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashbook_app/internal/core/ports/services"
	"github.com/SscSPs/cashbook_app/internal/dto"
	"github.com/SscSPs/cashbook_app/internal/events"
	"github.com/SscSPs/cashbook_app/internal/utils/accounting"
)

// cashbookService implements the CashbookSvcFacade interface
type cashbookService struct {
	BaseService
	entryRepo portsrepo.CashEntryRepositoryFacade
	tenants   portssvc.TenantReaderSvc
}

// NewCashbookService creates the ledger service. Tenant codes are resolved
// through tenants before the ledger store is touched.
func NewCashbookService(repo portsrepo.CashEntryRepositoryFacade, tenants portssvc.TenantReaderSvc, options ...ServiceOption) portssvc.CashbookSvcFacade {
	return &cashbookService{
		BaseService: newBaseService(options),
		entryRepo:   repo,
		tenants:     tenants,
	}
}

// Ensure cashbookService implements the CashbookSvcFacade interface
var _ portssvc.CashbookSvcFacade = (*cashbookService)(nil)

func (s *cashbookService) CreateCashEntry(ctx context.Context, req dto.CreateCashEntryRequest) (*domain.CashEntry, error) {
	tenant, err := s.tenants.ResolveTenant(ctx, req.TenantCode)
	if err != nil {
		return nil, err
	}

	kind, ok := domain.ParseEntryKind(req.Kind)
	if !ok {
		return nil, apperrors.NewValidationFailedError("kind must be 'income' or 'expense'")
	}
	entryDate, err := validateEntryDate(req.ResolvedEntryDate())
	if err != nil {
		return nil, err
	}
	amount, err := validateAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	entry := domain.CashEntry{
		EntryID:     s.NewID(),
		TenantID:    tenant.TenantID,
		TenantCode:  tenant.Code,
		EntryDate:   entryDate,
		Kind:        kind,
		Amount:      amount,
		Description: normalizeDescription(req.ResolvedDescription()),
		CreatedAt:   s.Now(),
	}

	if err := s.entryRepo.SaveCashEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Tenant vanished before entry was stored", slog.String("tenant_code", tenant.Code))
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, fmt.Sprintf("tenant '%s' not found", tenant.Code), err)
		}
		s.LogError(ctx, err, "Failed to save cash entry", slog.String("tenant_code", tenant.Code))
		return nil, fmt.Errorf("failed to create cash entry: %w", err)
	}

	evt := events.NewEvent(events.CashEntryCreated, tenant.TenantID, tenant.Code, dto.ToCashEntryResponse(&entry))
	evt.EntryID = entry.EntryID
	s.publish(ctx, evt)

	s.LogInfo(ctx, "Cash entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("tenant_code", tenant.Code),
		slog.String("kind", string(entry.Kind)),
		slog.String("amount", entry.Amount.StringFixed(domain.AmountScale)))
	return &entry, nil
}

func (s *cashbookService) GetCashEntry(ctx context.Context, tenantCode, entryID string) (*domain.CashEntry, error) {
	tenant, err := s.tenants.ResolveTenant(ctx, tenantCode)
	if err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindCashEntryByID(ctx, tenant.TenantID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, "cash entry not found", err)
		}
		s.LogError(ctx, err, "Failed to find cash entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to get cash entry: %w", err)
	}
	entry.TenantCode = tenant.Code
	return entry, nil
}

func (s *cashbookService) ListCashEntries(ctx context.Context, tenantCode string, params dto.ListCashEntriesParams) (*domain.EntryPage, error) {
	tenant, err := s.tenants.ResolveTenant(ctx, tenantCode)
	if err != nil {
		return nil, err
	}
	filter, err := buildEntryFilter(params)
	if err != nil {
		return nil, err
	}

	page, err := s.entryRepo.ListCashEntriesFiltered(ctx, tenant.TenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash entries", slog.String("tenant_code", tenant.Code))
		return nil, fmt.Errorf("failed to list cash entries: %w", err)
	}
	stampTenantCode(page.Items, tenant.Code)
	return page, nil
}

func (s *cashbookService) ListAllCashEntries(ctx context.Context, tenantCode string) ([]domain.CashEntry, error) {
	tenant, err := s.tenants.ResolveTenant(ctx, tenantCode)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListCashEntriesByTenant(ctx, tenant.TenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash entries", slog.String("tenant_code", tenant.Code))
		return nil, fmt.Errorf("failed to list cash entries: %w", err)
	}
	if entries == nil {
		entries = []domain.CashEntry{}
	}
	stampTenantCode(entries, tenant.Code)
	return entries, nil
}

func (s *cashbookService) GetMonthlySummary(ctx context.Context, tenantCode string, params dto.SummaryParams) (*domain.MonthlySummary, error) {
	tenant, err := s.tenants.ResolveTenant(ctx, tenantCode)
	if err != nil {
		return nil, err
	}
	period, reference, err := resolveSummaryPeriod(params)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListCashEntriesByPeriod(ctx, tenant.TenantID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash entries for summary", slog.String("tenant_code", tenant.Code), slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to build monthly summary: %w", err)
	}

	balance, err := accounting.Balance(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}
	totals, err := accounting.CalculateTotals(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	s.LogDebug(ctx, "Monthly summary computed",
		slog.String("tenant_code", tenant.Code),
		slog.String("period", period.String()),
		slog.Int("entries", len(entries)))

	return &domain.MonthlySummary{
		TenantCode:    tenant.Code,
		Period:        period,
		Balance:       balance,
		Income:        totals.Income,
		Expense:       totals.Expense,
		ReferenceDate: reference,
	}, nil
}

func (s *cashbookService) GetTotals(ctx context.Context, tenantCode string, params dto.TotalsParams) (*domain.RangeTotals, error) {
	tenant, err := s.tenants.ResolveTenant(ctx, tenantCode)
	if err != nil {
		return nil, err
	}
	from, to, err := parseDateRange("from", params.From, "to", params.To)
	if err != nil {
		return nil, err
	}

	page, err := s.entryRepo.ListCashEntriesFiltered(ctx, tenant.TenantID, domain.EntryFilter{DateFrom: from, DateTo: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash entries for totals", slog.String("tenant_code", tenant.Code))
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	totals, err := accounting.CalculateTotals(page.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	return &domain.RangeTotals{
		TenantCode:   tenant.Code,
		From:         from,
		To:           to,
		Income:       totals.Income,
		Expense:      totals.Expense,
		Net:          totals.Net,
		IncomeCount:  totals.IncomeCount,
		ExpenseCount: totals.ExpenseCount,
	}, nil
}

// stampTenantCode fills the code for stores that only persist the tenant id.
func stampTenantCode(entries []domain.CashEntry, code string) {
	for i := range entries {
		entries[i].TenantCode = code
	}
}
