package mapping

import (
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/SscSPs/cashbook_app/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:  d.TenantID,
		Code:      d.Code,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:  m.TenantID,
		Code:      m.Code,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainTenantSlice converts a slice of model Tenants to a slice of domain Tenants
func ToDomainTenantSlice(ms []models.Tenant) []domain.Tenant {
	ds := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenant(m)
	}
	return ds
}
