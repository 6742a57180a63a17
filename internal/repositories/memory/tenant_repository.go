package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
)

func (s *Store) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tenants[tenantID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (s *Store) FindTenantByCode(ctx context.Context, code string) (*domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.codes[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	t := s.tenants[id]
	return &t, nil
}

func (s *Store) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Tenant, 0, len(s.tenantOrder))
	for _, id := range s.tenantOrder {
		out = append(out, s.tenants[id])
	}
	return out, nil
}

func (s *Store) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.codes[tenant.Code]; taken {
		return apperrors.NewConflictError(fmt.Sprintf("tenant code '%s' already exists", tenant.Code))
	}
	if _, gone := s.retired[tenant.Code]; gone {
		return apperrors.NewConflictError(fmt.Sprintf("tenant code '%s' was retired and cannot be reused", tenant.Code))
	}
	if _, dup := s.tenants[tenant.TenantID]; dup {
		return apperrors.NewConflictError("tenant id already exists")
	}

	s.tenants[tenant.TenantID] = tenant
	s.codes[tenant.Code] = tenant.TenantID
	s.tenantOrder = append(s.tenantOrder, tenant.TenantID)
	return nil
}

func (s *Store) UpdateTenantName(ctx context.Context, tenantID string, name string) (*domain.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[tenantID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	t.Name = name
	s.tenants[tenantID] = t
	return &t, nil
}

func (s *Store) DeleteTenant(ctx context.Context, tenantID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[tenantID]
	if !ok {
		return false, nil
	}
	if len(s.entries[tenantID]) > 0 {
		return false, apperrors.NewConflictError(fmt.Sprintf("tenant '%s' still owns cash entries", t.Code))
	}

	delete(s.tenants, tenantID)
	delete(s.codes, t.Code)
	delete(s.entries, tenantID)
	s.retired[t.Code] = struct{}{}
	if i := indexOf(s.tenantOrder, tenantID); i >= 0 {
		s.tenantOrder = append(s.tenantOrder[:i], s.tenantOrder[i+1:]...)
	}
	return true, nil
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
