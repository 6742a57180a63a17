package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashbook_app/internal/models"
	"github.com/SscSPs/cashbook_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashEntryRepository struct {
	BaseRepository
}

// newPgxCashEntryRepository creates a new repository for ledger entries.
func newPgxCashEntryRepository(pool *pgxpool.Pool) *PgxCashEntryRepository {
	return &PgxCashEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CashEntryRepositoryFacade = (*PgxCashEntryRepository)(nil)

const (
	cashEntrySelect = `
		SELECT e.id::text, e.tenant_id::text, t.code, e.entry_date, e.kind, e.amount, e.description, e.created_at
		FROM cash_entries e
		JOIN tenants t ON t.id = e.tenant_id`
	ledgerOrder = ` ORDER BY e.entry_date, e.created_at, e.id`
)

func scanCashEntry(row pgx.Row) (models.CashEntry, error) {
	var m models.CashEntry
	err := row.Scan(
		&m.EntryID,
		&m.TenantID,
		&m.TenantCode,
		&m.EntryDate,
		&m.Kind,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxCashEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.CashEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash entries: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CashEntry, error) {
		return scanCashEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cash entries: %w", err)
	}
	return mapping.ToDomainCashEntrySlice(modelEntries), nil
}

// SaveCashEntry appends an entry. A foreign key violation means the tenant
// was deleted after it was resolved.
func (r *PgxCashEntryRepository) SaveCashEntry(ctx context.Context, entry domain.CashEntry) error {
	m := mapping.ToModelCashEntry(entry)

	query := `
		INSERT INTO cash_entries (id, tenant_id, entry_date, kind, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.TenantID,
		m.EntryDate,
		m.Kind,
		m.Amount,
		m.Description,
		m.CreatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return apperrors.NewAppError(apperrors.ErrNotFound, "tenant not found", err)
		case pgUniqueViolation:
			return apperrors.NewAppError(apperrors.ErrConflict, "cash entry id already exists", err)
		}
		return fmt.Errorf("failed to save cash entry %s: %w", m.EntryID, err)
	}
	return nil
}

// FindCashEntryByID only matches entries owned by tenantID.
func (r *PgxCashEntryRepository) FindCashEntryByID(ctx context.Context, tenantID, entryID string) (*domain.CashEntry, error) {
	query := cashEntrySelect + ` WHERE e.tenant_id::text = $1 AND e.id::text = $2;`
	m, err := scanCashEntry(r.Pool.QueryRow(ctx, query, tenantID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash entry %s: %w", entryID, err)
	}
	e := mapping.ToDomainCashEntry(m)
	return &e, nil
}

func (r *PgxCashEntryRepository) ListCashEntriesByTenant(ctx context.Context, tenantID string) ([]domain.CashEntry, error) {
	return r.queryEntries(ctx, cashEntrySelect+` WHERE e.tenant_id::text = $1`+ledgerOrder+`;`, tenantID)
}

func (r *PgxCashEntryRepository) ListCashEntriesByPeriod(ctx context.Context, tenantID string, period domain.Period) ([]domain.CashEntry, error) {
	query := cashEntrySelect + ` WHERE e.tenant_id::text = $1 AND e.entry_date BETWEEN $2 AND $3` + ledgerOrder + `;`
	return r.queryEntries(ctx, query, tenantID, period.FirstDay(), period.LastDay())
}

// filterClause builds the WHERE clause shared by the count and page queries.
func filterClause(tenantID string, filter domain.EntryFilter) (string, []any) {
	conds := []string{"e.tenant_id::text = $1"}
	args := []any{tenantID}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("e.entry_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("e.entry_date <= $%d", len(args)))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PgxCashEntryRepository) ListCashEntriesFiltered(ctx context.Context, tenantID string, filter domain.EntryFilter) (*domain.EntryPage, error) {
	where, args := filterClause(tenantID, filter)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM cash_entries e`+where+`;`, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count cash entries: %w", err)
	}

	query := cashEntrySelect + where + ledgerOrder
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	items, err := r.queryEntries(ctx, query+";", args...)
	if err != nil {
		return nil, err
	}
	return &domain.EntryPage{Items: items, Total: total, Offset: filter.Offset}, nil
}

func (r *PgxCashEntryRepository) CountCashEntriesByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM cash_entries WHERE tenant_id::text = $1;`, tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cash entries: %w", err)
	}
	return count, nil
}
