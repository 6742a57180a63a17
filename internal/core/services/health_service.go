package services

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/cashbook_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashbook_app/internal/core/ports/services"
)

const storePingTimeout = 2 * time.Second

type healthService struct {
	checker portsrepo.HealthChecker
}

func NewHealthService(checker portsrepo.HealthChecker) portssvc.HealthSvc {
	return &healthService{checker: checker}
}

func (s *healthService) CheckStore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()

	if err := s.checker.Ping(ctx); err != nil {
		return fmt.Errorf("store unavailable: %w", err)
	}
	return nil
}
