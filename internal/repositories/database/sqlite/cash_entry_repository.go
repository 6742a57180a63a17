package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashbook_app/internal/models"
	"github.com/SscSPs/cashbook_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type SQLiteCashEntryRepository struct {
	BaseRepository
}

// newSQLiteCashEntryRepository creates a new repository for ledger entries.
func newSQLiteCashEntryRepository(db *sql.DB) *SQLiteCashEntryRepository {
	return &SQLiteCashEntryRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CashEntryRepositoryFacade = (*SQLiteCashEntryRepository)(nil)

const (
	cashEntrySelect = `
		SELECT e.id, e.tenant_id, t.code, e.entry_date, e.kind, e.amount, e.description, e.created_at
		FROM cash_entries e
		JOIN tenants t ON t.id = e.tenant_id`
	ledgerOrder = ` ORDER BY e.entry_date, e.created_at, e.id`
)

func scanCashEntry(row rowScanner) (models.CashEntry, error) {
	var (
		m           models.CashEntry
		entryDate   string
		amount      string
		description sql.NullString
		createdAt   string
	)
	if err := row.Scan(&m.EntryID, &m.TenantID, &m.TenantCode, &entryDate, &m.Kind, &amount, &description, &createdAt); err != nil {
		return m, err
	}

	var err error
	if m.EntryDate, err = domain.ParseDate(entryDate); err != nil {
		return m, fmt.Errorf("invalid entry_date %q: %w", entryDate, err)
	}
	if m.Amount, err = decimal.NewFromString(amount); err != nil {
		return m, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return m, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	if description.Valid {
		d := description.String
		m.Description = &d
	}
	return m, nil
}

func (r *SQLiteCashEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.CashEntry, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.CashEntry{}
	for rows.Next() {
		m, err := scanCashEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash entry: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cash entries: %w", err)
	}
	return mapping.ToDomainCashEntrySlice(modelEntries), nil
}

// SaveCashEntry appends an entry. A foreign key violation means the tenant
// was deleted after it was resolved.
func (r *SQLiteCashEntryRepository) SaveCashEntry(ctx context.Context, entry domain.CashEntry) error {
	m := mapping.ToModelCashEntry(entry)

	query := `
		INSERT INTO cash_entries (id, tenant_id, entry_date, kind, amount, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.EntryID,
		m.TenantID,
		m.EntryDate.Format(domain.DateLayout),
		m.Kind,
		m.Amount.StringFixed(domain.AmountScale),
		m.Description,
		formatTimestamp(m.CreatedAt),
	)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return apperrors.NewAppError(apperrors.ErrNotFound, "tenant not found", err)
		case isUniqueViolation(err):
			return apperrors.NewAppError(apperrors.ErrConflict, "cash entry id already exists", err)
		}
		return fmt.Errorf("failed to save cash entry %s: %w", m.EntryID, err)
	}
	return nil
}

// FindCashEntryByID only matches entries owned by tenantID.
func (r *SQLiteCashEntryRepository) FindCashEntryByID(ctx context.Context, tenantID, entryID string) (*domain.CashEntry, error) {
	query := cashEntrySelect + ` WHERE e.tenant_id = ? AND e.id = ?;`
	m, err := scanCashEntry(r.DB.QueryRowContext(ctx, query, tenantID, entryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash entry %s: %w", entryID, err)
	}
	e := mapping.ToDomainCashEntry(m)
	return &e, nil
}

func (r *SQLiteCashEntryRepository) ListCashEntriesByTenant(ctx context.Context, tenantID string) ([]domain.CashEntry, error) {
	return r.queryEntries(ctx, cashEntrySelect+` WHERE e.tenant_id = ?`+ledgerOrder+`;`, tenantID)
}

func (r *SQLiteCashEntryRepository) ListCashEntriesByPeriod(ctx context.Context, tenantID string, period domain.Period) ([]domain.CashEntry, error) {
	query := cashEntrySelect + ` WHERE e.tenant_id = ? AND e.entry_date BETWEEN ? AND ?` + ledgerOrder + `;`
	return r.queryEntries(ctx, query,
		tenantID,
		period.FirstDay().Format(domain.DateLayout),
		period.LastDay().Format(domain.DateLayout),
	)
}

func filterClause(tenantID string, filter domain.EntryFilter) (string, []any) {
	conds := []string{"e.tenant_id = ?"}
	args := []any{tenantID}
	if filter.DateFrom != nil {
		conds = append(conds, "e.entry_date >= ?")
		args = append(args, filter.DateFrom.Format(domain.DateLayout))
	}
	if filter.DateTo != nil {
		conds = append(conds, "e.entry_date <= ?")
		args = append(args, filter.DateTo.Format(domain.DateLayout))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *SQLiteCashEntryRepository) ListCashEntriesFiltered(ctx context.Context, tenantID string, filter domain.EntryFilter) (*domain.EntryPage, error) {
	where, args := filterClause(tenantID, filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cash_entries e`+where+`;`, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count cash entries: %w", err)
	}

	// SQLite only accepts OFFSET after a LIMIT; -1 means unbounded.
	query := cashEntrySelect + where + ledgerOrder
	if filter.Limit > 0 || filter.Offset > 0 {
		limit := -1
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, filter.Offset)
	}

	items, err := r.queryEntries(ctx, query+";", args...)
	if err != nil {
		return nil, err
	}
	return &domain.EntryPage{Items: items, Total: total, Offset: filter.Offset}, nil
}

func (r *SQLiteCashEntryRepository) CountCashEntriesByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cash_entries WHERE tenant_id = ?;`, tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cash entries: %w", err)
	}
	return count, nil
}
