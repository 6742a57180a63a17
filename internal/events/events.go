// Package events publishes ledger changes to external consumers. Publishing
// happens after the store commit and never fails the originating request.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TenantCreated    = "tenant.created"
	TenantDeleted    = "tenant.deleted"
	CashEntryCreated = "cash_entry.created"
)

// Event is the envelope written to every transport.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	TenantID   string    `json:"tenant_id"`
	TenantCode string    `json:"tenant_code"`
	EntryID    string    `json:"entry_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType, tenantID, tenantCode string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		TenantID:   tenantID,
		TenantCode: tenantCode,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Key partitions events per tenant so consumers see them in order.
func (e Event) Key() string {
	return e.TenantID
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher discards events. Used when EVENTS_DRIVER is none.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
