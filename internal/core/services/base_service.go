package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/cashbook_app/internal/events"
	"github.com/SscSPs/cashbook_app/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher events.Publisher
	Now       func() time.Time
	NewID     func() string
}

// ServiceOption is a functional option for configuring services
type ServiceOption func(*BaseService)

// WithEventPublisher sets where ledger events are sent after a commit.
func WithEventPublisher(p events.Publisher) ServiceOption {
	return func(s *BaseService) {
		s.Publisher = p
	}
}

// WithClock overrides the time source used for created_at stamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Now = now
	}
}

// WithIDGenerator overrides how tenant and entry ids are minted.
func WithIDGenerator(gen func() string) ServiceOption {
	return func(s *BaseService) {
		s.NewID = gen
	}
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{
		Publisher: events.NoopPublisher{},
		Now:       func() time.Time { return time.Now().UTC() },
		NewID:     uuid.NewString,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// publish sends an event after the write it describes has been committed.
// Failures are logged and swallowed.
func (s *BaseService) publish(ctx context.Context, event events.Event) {
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.GetLogger(ctx).Warn("Failed to publish ledger event",
			slog.String("error", err.Error()),
			slog.String("event_type", event.Type),
			slog.String("tenant_code", event.TenantCode))
	}
}
