package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashbook_app/internal/models"
	"github.com/SscSPs/cashbook_app/internal/utils/mapping"
)

type SQLiteTenantRepository struct {
	BaseRepository
}

// newSQLiteTenantRepository creates a new repository for tenant data.
func newSQLiteTenantRepository(db *sql.DB) *SQLiteTenantRepository {
	return &SQLiteTenantRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TenantRepositoryFacade = (*SQLiteTenantRepository)(nil)

const tenantColumns = `id, code, name, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (models.Tenant, error) {
	var (
		t         models.Tenant
		createdAt string
	)
	if err := row.Scan(&t.TenantID, &t.Code, &t.Name, &createdAt); err != nil {
		return t, err
	}
	ts, err := parseTimestamp(createdAt)
	if err != nil {
		return t, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	t.CreatedAt = ts
	return t, nil
}

// SaveTenant inserts a tenant unless its code is taken or retired.
func (r *SQLiteTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)

	query := `
		INSERT INTO tenants (id, code, name, created_at)
		SELECT ?1, ?2, ?3, ?4
		WHERE NOT EXISTS (SELECT 1 FROM retired_tenant_codes WHERE code = ?2);
	`
	res, err := r.DB.ExecContext(ctx, query, m.TenantID, m.Code, m.Name, formatTimestamp(m.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(apperrors.ErrConflict, fmt.Sprintf("tenant code '%s' already exists", m.Code), err)
		}
		return fmt.Errorf("failed to save tenant %s: %w", m.Code, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("tenant code '%s' was retired and cannot be reused", m.Code))
	}
	return nil
}

func (r *SQLiteTenantRepository) findTenant(ctx context.Context, column, value string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE ` + column + ` = ?;`
	m, err := scanTenant(r.DB.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant by %s %s: %w", column, value, err)
	}
	t := mapping.ToDomainTenant(m)
	return &t, nil
}

func (r *SQLiteTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return r.findTenant(ctx, "id", tenantID)
}

func (r *SQLiteTenantRepository) FindTenantByCode(ctx context.Context, code string) (*domain.Tenant, error) {
	return r.findTenant(ctx, "code", code)
}

// ListTenants retrieves all tenants in creation order.
func (r *SQLiteTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+tenantColumns+` FROM tenants ORDER BY created_at, id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants: %w", err)
	}
	defer rows.Close()

	var modelTenants []models.Tenant
	for rows.Next() {
		m, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		modelTenants = append(modelTenants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tenants: %w", err)
	}
	return mapping.ToDomainTenantSlice(modelTenants), nil
}

func (r *SQLiteTenantRepository) UpdateTenantName(ctx context.Context, tenantID string, name string) (*domain.Tenant, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE tenants SET name = ? WHERE id = ?;`, name, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to update tenant %s: %w", tenantID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindTenantByID(ctx, tenantID)
}

// DeleteTenant retires the code and removes the tenant in one transaction.
// The store runs on a single connection, so the transaction also excludes
// concurrent entry inserts.
func (r *SQLiteTenantRepository) DeleteTenant(ctx context.Context, tenantID string) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(tx)

	var code string
	err = tx.QueryRowContext(ctx, `SELECT code FROM tenants WHERE id = ?;`, tenantID).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}

	var hasEntries bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM cash_entries WHERE tenant_id = ?);`, tenantID).Scan(&hasEntries)
	if err != nil {
		return false, fmt.Errorf("failed to check entries of tenant %s: %w", tenantID, err)
	}
	if hasEntries {
		return false, apperrors.NewConflictError(fmt.Sprintf("tenant '%s' still owns cash entries", code))
	}

	_, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO retired_tenant_codes (code, tenant_id, retired_at) VALUES (?, ?, ?);`,
		code, tenantID, formatTimestamp(time.Now()))
	if err != nil {
		return false, fmt.Errorf("failed to retire tenant code %s: %w", code, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM tenants WHERE id = ?;`, tenantID); err != nil {
		if isForeignKeyViolation(err) {
			return false, apperrors.NewAppError(apperrors.ErrConflict, fmt.Sprintf("tenant '%s' still owns cash entries", code), err)
		}
		return false, fmt.Errorf("failed to delete tenant %s: %w", tenantID, err)
	}

	if err := r.Commit(tx); err != nil {
		return false, err
	}
	return true, nil
}
