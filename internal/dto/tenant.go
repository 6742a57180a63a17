package dto

import (
	"time"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
)

// CreateTenantRequest defines the data needed to create a new tenant.
type CreateTenantRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// UpdateTenantRequest defines the mutable tenant fields.
type UpdateTenantRequest struct {
	Name string `json:"name" binding:"required"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTenantResponse converts a domain.Tenant to TenantResponse DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.TenantID,
		Code:      t.Code,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}

// ToListTenantResponse converts a slice of tenants, never returning nil.
func ToListTenantResponse(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = ToTenantResponse(&tenants[i])
	}
	return responses
}

// DemoTenants is the fixture loaded when SEED_DEMO_TENANTS is enabled.
func DemoTenants() []CreateTenantRequest {
	return []CreateTenantRequest{
		{Code: "acme", Name: "ACME d.o.o."},
		{Code: "beta", Name: "Beta d.o.o."},
		{Code: "gamma", Name: "Gamma d.o.o."},
	}
}
