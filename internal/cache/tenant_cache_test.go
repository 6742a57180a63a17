package cache

import (
	"testing"
	"time"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTenantCache_AddGetInvalidate(t *testing.T) {
	c := NewTenantCache(2, time.Minute)
	acme := domain.Tenant{TenantID: "1", Code: "acme", Name: "ACME"}

	c.Add(acme)
	got, ok := c.Get("acme")
	assert.True(t, ok)
	assert.Equal(t, acme, got)

	c.Invalidate("acme")
	_, ok = c.Get("acme")
	assert.False(t, ok)
}

func TestTenantCache_EvictsOldest(t *testing.T) {
	c := NewTenantCache(2, time.Minute)
	c.Add(domain.Tenant{Code: "a"})
	c.Add(domain.Tenant{Code: "b"})
	c.Add(domain.Tenant{Code: "c"})

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestTenantCache_Disabled(t *testing.T) {
	c := NewTenantCache(0, time.Minute)
	c.Add(domain.Tenant{Code: "a"})
	_, ok := c.Get("a")
	assert.False(t, ok)

	var nilCache *TenantCache
	nilCache.Invalidate("a")
	assert.Equal(t, 0, nilCache.Len())
}
