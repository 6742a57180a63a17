// Package memory is the process-local store. One RWMutex guards tenants,
// retired codes and entries together so that tenant deletion and entry
// appends for the same tenant are serialised.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
)

type Store struct {
	mu sync.RWMutex

	tenants     map[string]domain.Tenant // by id
	tenantOrder []string                 // ids in creation order
	codes       map[string]string        // code -> id
	retired     map[string]struct{}

	entries    map[string][]domain.CashEntry // tenant id -> ledger order
	entryOwner map[string]string             // entry id -> tenant id
}

func NewStore() *Store {
	return &Store{
		tenants:    make(map[string]domain.Tenant),
		codes:      make(map[string]string),
		retired:    make(map[string]struct{}),
		entries:    make(map[string][]domain.CashEntry),
		entryOwner: make(map[string]string),
	}
}

// NewRepositoryProvider wires a fresh store behind every repository port.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	store := NewStore()
	return portsrepo.RepositoryProvider{
		TenantRepo:    store,
		CashEntryRepo: store,
		Health:        store,
	}
}

var (
	_ portsrepo.TenantRepositoryFacade    = (*Store)(nil)
	_ portsrepo.CashEntryRepositoryFacade = (*Store)(nil)
	_ portsrepo.HealthChecker             = (*Store)(nil)
)

// Ping always succeeds; the store lives in process memory.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// compareEntries orders by entry date, then creation time, then id.
func compareEntries(a, b domain.CashEntry) int {
	if c := a.EntryDate.Compare(b.EntryDate); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.EntryID, b.EntryID)
}

func cloneEntry(e domain.CashEntry) domain.CashEntry {
	if e.Description != nil {
		d := *e.Description
		e.Description = &d
	}
	return e
}

func cloneEntries(entries []domain.CashEntry) []domain.CashEntry {
	out := make([]domain.CashEntry, len(entries))
	for i, e := range entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func insertSorted(entries []domain.CashEntry, e domain.CashEntry) []domain.CashEntry {
	i, _ := slices.BinarySearchFunc(entries, e, compareEntries)
	return slices.Insert(entries, i, e)
}
