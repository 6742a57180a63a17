package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TenantHeader scopes the header-based cash routes.
const TenantHeader = "X-Tenant-Code"

// ScopeProvider extracts the tenant code a request is scoped to.
type ScopeProvider interface {
	TenantCode(c *gin.Context) (string, bool)
}

// QueryScope reads the tenant code from a query parameter.
type QueryScope string

func (q QueryScope) TenantCode(c *gin.Context) (string, bool) {
	code := strings.TrimSpace(c.Query(string(q)))
	return code, code != ""
}

// HeaderScope reads the tenant code from a request header.
type HeaderScope string

func (h HeaderScope) TenantCode(c *gin.Context) (string, bool) {
	code := strings.TrimSpace(c.GetHeader(string(h)))
	return code, code != ""
}

// ScopeChain tries each provider in order and returns the first code found.
type ScopeChain []ScopeProvider

func (s ScopeChain) TenantCode(c *gin.Context) (string, bool) {
	for _, p := range s {
		if code, ok := p.TenantCode(c); ok {
			return code, true
		}
	}
	return "", false
}

// defaultScope accepts every supported way of naming the tenant.
var defaultScope = ScopeChain{
	QueryScope("tenant"),
	QueryScope("tenant_code"),
	HeaderScope(TenantHeader),
}
