package repositories

import (
	"context"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
)

// TenantReader defines read operations for the tenant directory
type TenantReader interface {
	// FindTenantByID returns apperrors.ErrNotFound when no tenant has the id.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// FindTenantByCode resolves the external scoping key to a tenant.
	FindTenantByCode(ctx context.Context, code string) (*domain.Tenant, error)

	// ListTenants returns every tenant ordered by creation.
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for the tenant directory
type TenantWriter interface {
	// SaveTenant inserts a new tenant. A code that exists or was ever
	// retired yields apperrors.ErrConflict.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenantName changes the display name only.
	UpdateTenantName(ctx context.Context, tenantID string, name string) (*domain.Tenant, error)

	// DeleteTenant removes the tenant and retires its code. It reports false
	// when the tenant did not exist and apperrors.ErrConflict when the tenant
	// still owns cash entries.
	DeleteTenant(ctx context.Context, tenantID string) (bool, error)
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
