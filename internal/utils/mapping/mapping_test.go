package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/SscSPs/cashbook_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainCashEntry_NormalisesDate(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	m := models.CashEntry{
		EntryID:   "e1",
		TenantID:  "t1",
		EntryDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, loc),
		Kind:      "income",
		Amount:    decimal.RequireFromString("10.00"),
	}

	d := ToDomainCashEntry(m)
	assert.Equal(t, domain.Income, d.Kind)
	assert.Equal(t, time.UTC, d.EntryDate.Location())
	assert.Equal(t, "2024-03-05", d.EntryDate.Format(domain.DateLayout))
}

func TestToDomainTenantSlice(t *testing.T) {
	got := ToDomainTenantSlice([]models.Tenant{{TenantID: "1", Code: "acme"}, {TenantID: "2", Code: "beta"}})
	assert.Len(t, got, 2)
	assert.Equal(t, "beta", got[1].Code)
	assert.NotNil(t, ToDomainTenantSlice(nil))
}
