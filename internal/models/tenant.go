package models

import "time"

// Tenant is the persisted row of the tenants table.
type Tenant struct {
	TenantID  string    `json:"tenantID"` // Primary Key (UUID)
	Code      string    `json:"code"`     // Unique, never reused
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
