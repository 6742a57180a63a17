package services

import (
	"context"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/SscSPs/cashbook_app/internal/dto"
)

// TenantReaderSvc defines read operations for the tenant directory
type TenantReaderSvc interface {
	// GetTenantByID retrieves a tenant by its opaque id.
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ResolveTenant maps an external tenant code to its tenant.
	ResolveTenant(ctx context.Context, code string) (*domain.Tenant, error)

	// ListTenants retrieves all tenants in creation order.
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

// TenantWriterSvc defines administrative tenant operations
type TenantWriterSvc interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*domain.Tenant, error)

	// RenameTenant updates the display name; the code is immutable.
	RenameTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest) (*domain.Tenant, error)

	// DeleteTenant reports whether a tenant was removed. Deleting an absent
	// tenant is not an error.
	DeleteTenant(ctx context.Context, tenantID string) (bool, error)

	// SeedTenants creates the given tenants, skipping codes already taken.
	SeedTenants(ctx context.Context, tenants []dto.CreateTenantRequest) error
}

// TenantSvcFacade combines all tenant-related service interfaces
type TenantSvcFacade interface {
	TenantReaderSvc
	TenantWriterSvc
}
