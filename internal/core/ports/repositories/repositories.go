package repositories

import "context"

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TenantRepo    TenantRepositoryFacade
	CashEntryRepo CashEntryRepositoryFacade
	Health        HealthChecker
}
