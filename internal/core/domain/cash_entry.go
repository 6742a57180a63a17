package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind says whether an entry adds to or subtracts from the balance.
type EntryKind string

const (
	Income  EntryKind = "income"
	Expense EntryKind = "expense"
)

// ParseEntryKind normalises user input ("INCOME", " expense ") to a kind.
func ParseEntryKind(s string) (EntryKind, bool) {
	switch k := EntryKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Income, Expense:
		return k, true
	default:
		return "", false
	}
}

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale = 2

// MaxAmount is the first value that no longer fits NUMERIC(12,2).
var MaxAmount = decimal.New(1, 10)

// NormalizeAmount rounds to two places, half away from zero.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// CashEntry is one dated income or expense record of a single tenant.
// Amount is always a positive magnitude; Kind carries the sign.
type CashEntry struct {
	EntryID     string          `json:"id"`
	TenantID    string          `json:"tenantID"`
	TenantCode  string          `json:"tenantCode"`
	EntryDate   time.Time       `json:"entryDate"`
	Kind        EntryKind       `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// EntryFilter narrows a tenant listing. Zero values mean "no bound".
type EntryFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// Matches reports whether the entry date falls inside the filter's range.
func (f EntryFilter) Matches(e CashEntry) bool {
	if f.DateFrom != nil && e.EntryDate.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && e.EntryDate.After(*f.DateTo) {
		return false
	}
	return true
}

// EntryPage is one page of a filtered listing plus the unpaged total.
type EntryPage struct {
	Items  []CashEntry
	Total  int
	Offset int
}
