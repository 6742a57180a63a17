package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/cache"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashbook_app/internal/core/ports/services"
	"github.com/SscSPs/cashbook_app/internal/dto"
	"github.com/SscSPs/cashbook_app/internal/events"
)

// tenantService implements the TenantSvcFacade interface
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
	cache      *cache.TenantCache
}

// NewTenantService creates the tenant directory service. tenantCache may be
// nil to always hit the repository.
func NewTenantService(repo portsrepo.TenantRepositoryFacade, tenantCache *cache.TenantCache, options ...ServiceOption) portssvc.TenantSvcFacade {
	return &tenantService{
		BaseService: newBaseService(options),
		tenantRepo:  repo,
		cache:       tenantCache,
	}
}

// Ensure tenantService implements the TenantSvcFacade interface
var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

func tenantNotFound(err error) error {
	return apperrors.NewAppError(apperrors.ErrNotFound, "tenant not found", err)
}

func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	code, err := validateTenantCode(req.Code)
	if err != nil {
		return nil, err
	}
	name, err := validateTenantName(req.Name)
	if err != nil {
		return nil, err
	}

	tenant := domain.Tenant{
		TenantID:  s.NewID(),
		Code:      code,
		Name:      name,
		CreatedAt: s.Now(),
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.GetLogger(ctx).Warn("Tenant code already taken", slog.String("tenant_code", code))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save tenant", slog.String("tenant_code", code))
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.cache.Add(tenant)
	s.publish(ctx, events.NewEvent(events.TenantCreated, tenant.TenantID, tenant.Code, dto.ToTenantResponse(&tenant)))

	s.LogInfo(ctx, "Tenant created", slog.String("tenant_id", tenant.TenantID), slog.String("tenant_code", tenant.Code))
	return &tenant, nil
}

func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, tenantNotFound(err)
		}
		s.LogError(ctx, err, "Failed to find tenant by ID", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}

func (s *tenantService) ResolveTenant(ctx context.Context, code string) (*domain.Tenant, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewNotFoundError("tenant code is required")
	}
	if cached, ok := s.cache.Get(code); ok {
		return &cached, nil
	}

	tenant, err := s.tenantRepo.FindTenantByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Tenant code did not resolve", slog.String("tenant_code", code))
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, fmt.Sprintf("tenant '%s' not found", code), err)
		}
		s.LogError(ctx, err, "Failed to resolve tenant", slog.String("tenant_code", code))
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}

	s.cache.Add(*tenant)
	return tenant, nil
}

func (s *tenantService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenants")
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	if tenants == nil {
		return []domain.Tenant{}, nil
	}
	return tenants, nil
}

func (s *tenantService) RenameTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest) (*domain.Tenant, error) {
	name, err := validateTenantName(req.Name)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.UpdateTenantName(ctx, tenantID, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, tenantNotFound(err)
		}
		s.LogError(ctx, err, "Failed to rename tenant", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to rename tenant: %w", err)
	}

	s.cache.Invalidate(tenant.Code)
	s.LogInfo(ctx, "Tenant renamed", slog.String("tenant_id", tenantID))
	return tenant, nil
}

func (s *tenantService) DeleteTenant(ctx context.Context, tenantID string) (bool, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Delete of absent tenant is a no-op", slog.String("tenant_id", tenantID))
			return false, nil
		}
		s.LogError(ctx, err, "Failed to load tenant for delete", slog.String("tenant_id", tenantID))
		return false, fmt.Errorf("failed to delete tenant: %w", err)
	}

	deleted, err := s.tenantRepo.DeleteTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.GetLogger(ctx).Warn("Refused to delete tenant that owns entries", slog.String("tenant_code", tenant.Code))
			return false, err
		}
		s.LogError(ctx, err, "Failed to delete tenant", slog.String("tenant_id", tenantID))
		return false, fmt.Errorf("failed to delete tenant: %w", err)
	}

	s.cache.Invalidate(tenant.Code)
	if deleted {
		s.publish(ctx, events.NewEvent(events.TenantDeleted, tenant.TenantID, tenant.Code, nil))
		s.LogInfo(ctx, "Tenant deleted", slog.String("tenant_id", tenantID), slog.String("tenant_code", tenant.Code))
	}
	return deleted, nil
}

func (s *tenantService) SeedTenants(ctx context.Context, tenants []dto.CreateTenantRequest) error {
	for _, req := range tenants {
		if _, err := s.ResolveTenant(ctx, req.Code); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		if _, err := s.CreateTenant(ctx, req); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				// retired or created concurrently
				continue
			}
			return fmt.Errorf("failed to seed tenant %s: %w", req.Code, err)
		}
	}
	return nil
}
