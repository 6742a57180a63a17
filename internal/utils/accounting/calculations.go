package accounting

import (
	"fmt"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the sign of the entry kind to its magnitude.
// Income counts positive, expense negative. The sign is never stored.
func CalculateSignedAmount(entry domain.CashEntry) (decimal.Decimal, error) {
	switch entry.Kind {
	case domain.Income:
		return entry.Amount, nil
	case domain.Expense:
		return entry.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown entry kind '%s' encountered for entry ID %s", entry.Kind, entry.EntryID)
	}
}

// Balance returns Σincome − Σexpense over entries. Empty input yields zero.
func Balance(entries []domain.CashEntry) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, entry := range entries {
		signed, err := CalculateSignedAmount(entry)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(signed)
	}
	return sum, nil
}

// Totals is the per-kind breakdown of a set of entries.
type Totals struct {
	Income       decimal.Decimal
	Expense      decimal.Decimal
	Net          decimal.Decimal
	IncomeCount  int
	ExpenseCount int
}

// CalculateTotals sums income and expense separately. Net always equals
// Balance over the same entries.
func CalculateTotals(entries []domain.CashEntry) (Totals, error) {
	t := Totals{Income: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero}
	for _, entry := range entries {
		signed, err := CalculateSignedAmount(entry)
		if err != nil {
			return Totals{}, fmt.Errorf("error calculating signed amount for entry %s: %w", entry.EntryID, err)
		}
		if entry.Kind == domain.Income {
			t.Income = t.Income.Add(entry.Amount)
			t.IncomeCount++
		} else {
			t.Expense = t.Expense.Add(entry.Amount)
			t.ExpenseCount++
		}
		t.Net = t.Net.Add(signed)
	}
	return t, nil
}

// FilterByPeriod returns the entries dated inside p, keeping their order.
func FilterByPeriod(entries []domain.CashEntry, p domain.Period) []domain.CashEntry {
	out := make([]domain.CashEntry, 0, len(entries))
	for _, e := range entries {
		if p.Contains(e.EntryDate) {
			out = append(out, e)
		}
	}
	return out
}
