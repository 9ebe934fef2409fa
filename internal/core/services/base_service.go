package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/SscSPs/investment_club/internal/middleware"
	"github.com/SscSPs/investment_club/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Metrics *metrics.ClubMetrics
	Clock   func() time.Time
}

// Option configures the shared parts of a service.
type Option func(*BaseService)

// WithMetrics records service activity on m.
func WithMetrics(m *metrics.ClubMetrics) Option {
	return func(b *BaseService) { b.Metrics = m }
}

// WithClock overrides the time source, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(b *BaseService) { b.Clock = clock }
}

func newBaseService(opts []Option) BaseService {
	b := BaseService{Clock: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (s *BaseService) now() time.Time {
	return s.Clock()
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

// Reject logs a rejected operation and counts it. Expected rejections log at
// Warn; anything outside the error taxonomy logs at Error. err is returned unchanged.
func (s *BaseService) Reject(ctx context.Context, operation string, err error, keyvals ...any) error {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("operation", operation), slog.String("error", err.Error()))
	args = append(args, keyvals...)
	if metrics.Reason(err) == "internal" {
		s.GetLogger(ctx).Error("Operation failed", args...)
	} else {
		s.GetLogger(ctx).Warn("Operation rejected", args...)
	}
	s.Metrics.IncRejection(operation, err)
	return err
}

// actingMember resolves the member performing an operation.
func actingMember(st *domain.ClubState, actorID string) (*domain.Member, error) {
	m, err := st.FindMember(actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown member %s", apperrors.ErrForbidden, actorID)
	}
	return m, nil
}

// requireAdmin returns the actor if they hold the Admin role.
func requireAdmin(st *domain.ClubState, actorID string) (*domain.Member, error) {
	m, err := actingMember(st, actorID)
	if err != nil {
		return nil, err
	}
	if !m.IsAdmin() {
		return nil, fmt.Errorf("%w: admin role required", apperrors.ErrForbidden)
	}
	return m, nil
}

// requireFundManager returns the actor if they may record ledger entries and edit investments.
func requireFundManager(st *domain.ClubState, actorID string) (*domain.Member, error) {
	m, err := actingMember(st, actorID)
	if err != nil {
		return nil, err
	}
	if !m.CanManageFunds() {
		return nil, fmt.Errorf("%w: admin or treasurer role required", apperrors.ErrForbidden)
	}
	return m, nil
}
