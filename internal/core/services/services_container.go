package services

import (
	"github.com/SscSPs/cashbook_app/internal/cache"
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashbook_app/internal/core/ports/services"
	"github.com/SscSPs/cashbook_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Tenant resolution is shared by the cashbook service, so build it first
	tenantCache := cache.NewTenantCache(cfg.TenantCacheSize, cfg.TenantCacheTTL)
	container.Tenant = NewTenantService(repos.TenantRepo, tenantCache, options...)
	container.Cashbook = NewCashbookService(repos.CashEntryRepo, container.Tenant, options...)
	container.Health = NewHealthService(repos.Health)

	return container
}
