package cache

import (
	"time"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TenantCache memoises tenant code resolution. Codes are never reused, so a
// hit can only be stale in the window between a delete and Invalidate.
type TenantCache struct {
	lru *expirable.LRU[string, domain.Tenant]
}

// NewTenantCache returns a cache holding up to size tenants for ttl each.
// A non-positive size disables caching.
func NewTenantCache(size int, ttl time.Duration) *TenantCache {
	if size <= 0 {
		return &TenantCache{}
	}
	return &TenantCache{lru: expirable.NewLRU[string, domain.Tenant](size, nil, ttl)}
}

func (c *TenantCache) Get(code string) (domain.Tenant, bool) {
	if c == nil || c.lru == nil {
		return domain.Tenant{}, false
	}
	return c.lru.Get(code)
}

func (c *TenantCache) Add(t domain.Tenant) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Add(t.Code, t)
}

// Invalidate drops the cached tenant for code, if any.
func (c *TenantCache) Invalidate(code string) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Remove(code)
}

func (c *TenantCache) Len() int {
	if c == nil || c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
