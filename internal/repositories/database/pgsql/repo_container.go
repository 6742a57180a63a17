package pgsql

import (
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	tenantRepo := newPgxTenantRepository(dbPool)
	cashEntryRepo := newPgxCashEntryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TenantRepo:    tenantRepo,
		CashEntryRepo: cashEntryRepo,
		Health:        &BaseRepository{Pool: dbPool},
	}
}
