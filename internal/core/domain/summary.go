package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary is the aggregated view of one tenant's month.
type MonthlySummary struct {
	TenantCode string
	Period     Period
	Balance    decimal.Decimal
	Income     decimal.Decimal
	Expense    decimal.Decimal
	// ReferenceDate is set when the caller navigated from a date to another
	// month; it keeps the original day of month, clamped.
	ReferenceDate *time.Time
}

// RangeTotals is the per-kind breakdown over an optional date range.
type RangeTotals struct {
	TenantCode   string
	From         *time.Time
	To           *time.Time
	Income       decimal.Decimal
	Expense      decimal.Decimal
	Net          decimal.Decimal
	IncomeCount  int
	ExpenseCount int
}
