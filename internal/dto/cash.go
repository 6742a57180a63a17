package dto

import (
	"time"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/SscSPs/cashbook_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateCashEntryRequest is the body of POST /cash/entries and POST /cash/.
// Amount accepts a JSON number or a numeric string. Date and Note are
// accepted as aliases of EntryDate and Description.
type CreateCashEntryRequest struct {
	TenantCode  string           `json:"tenant_code"`
	EntryDate   string           `json:"entry_date"`
	Date        string           `json:"date"`
	Kind        string           `json:"kind" binding:"required,entrykind"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description *string          `json:"description"`
	Note        *string          `json:"note"`
}

// ResolvedEntryDate returns entry_date, falling back to the date alias.
func (r CreateCashEntryRequest) ResolvedEntryDate() string {
	if r.EntryDate != "" {
		return r.EntryDate
	}
	return r.Date
}

// ResolvedDescription returns description, falling back to the note alias.
func (r CreateCashEntryRequest) ResolvedDescription() *string {
	if r.Description != nil {
		return r.Description
	}
	return r.Note
}

// ListCashEntriesParams are the optional filters of GET /cash/entries.
type ListCashEntriesParams struct {
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

// SummaryParams select the month of GET /cash/summary. Either Year and
// Month or Date must be present; with both, the response also carries the
// reference date moved into the requested month.
type SummaryParams struct {
	Year  string `form:"year"`
	Month string `form:"month"`
	Date  string `form:"date"`
}

// TotalsParams bound GET /cash/totals, both ends inclusive.
type TotalsParams struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// CashEntryResponse defines the data returned for a cash entry.
type CashEntryResponse struct {
	ID          string    `json:"id"`
	TenantCode  string    `json:"tenant_code"`
	EntryDate   string    `json:"entry_date"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListCashEntriesResponse is one page of entries plus the unpaged count.
type ListCashEntriesResponse struct {
	Items      []CashEntryResponse `json:"items"`
	Total      int                 `json:"total"`
	NextOffset *int                `json:"next_offset,omitempty"`
}

// SummaryResponse is the monthly balance of one tenant.
type SummaryResponse struct {
	TenantCode    string  `json:"tenant_code"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Balance       string  `json:"balance"`
	Income        string  `json:"income"`
	Expense       string  `json:"expense"`
	ReferenceDate *string `json:"reference_date,omitempty"`
}

// TotalsResponse is the per-kind breakdown over a date range.
type TotalsResponse struct {
	TenantCode   string  `json:"tenant_code"`
	From         *string `json:"from"`
	To           *string `json:"to"`
	IncomeTotal  string  `json:"income_total"`
	ExpenseTotal string  `json:"expense_total"`
	NetTotal     string  `json:"net_total"`
	IncomeCount  int     `json:"income_count"`
	ExpenseCount int     `json:"expense_count"`
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(domain.AmountScale)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}

// ToCashEntryResponse converts a domain.CashEntry to CashEntryResponse DTO.
func ToCashEntryResponse(e *domain.CashEntry) CashEntryResponse {
	return CashEntryResponse{
		ID:          e.EntryID,
		TenantCode:  e.TenantCode,
		EntryDate:   e.EntryDate.Format(domain.DateLayout),
		Kind:        string(e.Kind),
		Amount:      formatAmount(e.Amount),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToCashEntryResponses converts a slice of entries, never returning nil.
func ToCashEntryResponses(entries []domain.CashEntry) []CashEntryResponse {
	responses := make([]CashEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToCashEntryResponse(&entries[i])
	}
	return responses
}

// ToListCashEntriesResponse converts a page of entries.
func ToListCashEntriesResponse(page *domain.EntryPage) ListCashEntriesResponse {
	return ListCashEntriesResponse{
		Items:      ToCashEntryResponses(page.Items),
		Total:      page.Total,
		NextOffset: pagination.NextOffset(page.Offset, len(page.Items), page.Total),
	}
}

// ToSummaryResponse converts a monthly summary.
func ToSummaryResponse(s *domain.MonthlySummary) SummaryResponse {
	return SummaryResponse{
		TenantCode:    s.TenantCode,
		Year:          s.Period.Year,
		Month:         int(s.Period.Month),
		Balance:       formatAmount(s.Balance),
		Income:        formatAmount(s.Income),
		Expense:       formatAmount(s.Expense),
		ReferenceDate: formatDatePtr(s.ReferenceDate),
	}
}

// ToTotalsResponse converts range totals.
func ToTotalsResponse(t *domain.RangeTotals) TotalsResponse {
	return TotalsResponse{
		TenantCode:   t.TenantCode,
		From:         formatDatePtr(t.From),
		To:           formatDatePtr(t.To),
		IncomeTotal:  formatAmount(t.Income),
		ExpenseTotal: formatAmount(t.Expense),
		NetTotal:     formatAmount(t.Net),
		IncomeCount:  t.IncomeCount,
		ExpenseCount: t.ExpenseCount,
	}
}
