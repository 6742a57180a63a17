package domain

import "time"

// MaxTenantCodeLength mirrors the width of the tenants.code column.
const MaxTenantCodeLength = 64

// Tenant is an isolated customer namespace. Code is the external scoping key
// and never changes once created.
type Tenant struct {
	TenantID  string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
