package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TenantRepo:    newSQLiteTenantRepository(db),
		CashEntryRepo: newSQLiteCashEntryRepository(db),
		Health:        &BaseRepository{DB: db},
	}
}
