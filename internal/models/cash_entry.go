package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashEntry is the persisted row of the cash_entries table. TenantCode is
// not stored; queries join it from tenants.
type CashEntry struct {
	EntryID     string          `json:"entryID"`  // Primary Key (UUID)
	TenantID    string          `json:"tenantID"` // FK -> tenants.id, ON DELETE RESTRICT
	TenantCode  string          `json:"tenantCode"`
	EntryDate   time.Time       `json:"entryDate"`
	Kind        string          `json:"kind"`   // income or expense
	Amount      decimal.Decimal `json:"amount"` // NUMERIC(12,2), always positive
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
