package mapping

import (
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/SscSPs/cashbook_app/internal/models"
)

// ToModelCashEntry converts a domain CashEntry to a model CashEntry
func ToModelCashEntry(d domain.CashEntry) models.CashEntry {
	return models.CashEntry{
		EntryID:     d.EntryID,
		TenantID:    d.TenantID,
		TenantCode:  d.TenantCode,
		EntryDate:   domain.TruncateToDate(d.EntryDate),
		Kind:        string(d.Kind),
		Amount:      d.Amount,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainCashEntry converts a model CashEntry to a domain CashEntry. Dates
// read back from a DATE column are normalised to UTC midnight.
func ToDomainCashEntry(m models.CashEntry) domain.CashEntry {
	return domain.CashEntry{
		EntryID:     m.EntryID,
		TenantID:    m.TenantID,
		TenantCode:  m.TenantCode,
		EntryDate:   domain.TruncateToDate(m.EntryDate),
		Kind:        domain.EntryKind(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainCashEntrySlice converts a slice of model CashEntries
func ToDomainCashEntrySlice(ms []models.CashEntry) []domain.CashEntry {
	ds := make([]domain.CashEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashEntry(m)
	}
	return ds
}
