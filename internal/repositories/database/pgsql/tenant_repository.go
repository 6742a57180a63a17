package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashbook_app/internal/models"
	"github.com/SscSPs/cashbook_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenant data.
func newPgxTenantRepository(pool *pgxpool.Pool) *PgxTenantRepository {
	return &PgxTenantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantColumns = `id::text, code, name, created_at`

func scanTenant(row pgx.Row) (models.Tenant, error) {
	var t models.Tenant
	err := row.Scan(&t.TenantID, &t.Code, &t.Name, &t.CreatedAt)
	return t, err
}

// SaveTenant inserts a tenant unless its code is taken or retired.
func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)

	query := `
		INSERT INTO tenants (id, code, name, created_at)
		SELECT $1::uuid, $2::varchar, $3::text, $4::timestamptz
		WHERE NOT EXISTS (SELECT 1 FROM retired_tenant_codes WHERE code = $2);
	`
	tag, err := r.Pool.Exec(ctx, query, m.TenantID, m.Code, m.Name, m.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewAppError(apperrors.ErrConflict, fmt.Sprintf("tenant code '%s' already exists", m.Code), err)
		}
		return fmt.Errorf("failed to save tenant %s: %w", m.Code, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("tenant code '%s' was retired and cannot be reused", m.Code))
	}
	return nil
}

// FindTenantByID retrieves a tenant by its id.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id::text = $1;`
	m, err := scanTenant(r.Pool.QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant by id %s: %w", tenantID, err)
	}
	t := mapping.ToDomainTenant(m)
	return &t, nil
}

// FindTenantByCode retrieves a tenant by its unique code.
func (r *PgxTenantRepository) FindTenantByCode(ctx context.Context, code string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE code = $1;`
	m, err := scanTenant(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant by code %s: %w", code, err)
	}
	t := mapping.ToDomainTenant(m)
	return &t, nil
}

// ListTenants retrieves all tenants in creation order.
func (r *PgxTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at, id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants: %w", err)
	}
	defer rows.Close()

	modelTenants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Tenant, error) {
		return scanTenant(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tenants: %w", err)
	}
	return mapping.ToDomainTenantSlice(modelTenants), nil
}

// UpdateTenantName changes the display name and returns the updated row.
func (r *PgxTenantRepository) UpdateTenantName(ctx context.Context, tenantID string, name string) (*domain.Tenant, error) {
	query := `UPDATE tenants SET name = $2 WHERE id::text = $1 RETURNING ` + tenantColumns + `;`
	m, err := scanTenant(r.Pool.QueryRow(ctx, query, tenantID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update tenant %s: %w", tenantID, err)
	}
	t := mapping.ToDomainTenant(m)
	return &t, nil
}

// DeleteTenant retires the code and removes the tenant in one transaction.
// The row lock conflicts with the key-share lock taken by concurrent entry
// inserts, and the RESTRICT foreign key backs up the explicit check.
func (r *PgxTenantRepository) DeleteTenant(ctx context.Context, tenantID string) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	var code string
	err = tx.QueryRow(ctx, `SELECT code FROM tenants WHERE id::text = $1 FOR UPDATE;`, tenantID).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock tenant %s: %w", tenantID, err)
	}

	var hasEntries bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cash_entries WHERE tenant_id::text = $1);`, tenantID).Scan(&hasEntries)
	if err != nil {
		return false, fmt.Errorf("failed to check entries of tenant %s: %w", tenantID, err)
	}
	if hasEntries {
		return false, apperrors.NewConflictError(fmt.Sprintf("tenant '%s' still owns cash entries", code))
	}

	_, err = tx.Exec(ctx, `INSERT INTO retired_tenant_codes (code, tenant_id) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING;`, code, tenantID)
	if err != nil {
		return false, fmt.Errorf("failed to retire tenant code %s: %w", code, err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM tenants WHERE id::text = $1;`, tenantID); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return false, apperrors.NewAppError(apperrors.ErrConflict, fmt.Sprintf("tenant '%s' still owns cash entries", code), err)
		}
		return false, fmt.Errorf("failed to delete tenant %s: %w", tenantID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}
