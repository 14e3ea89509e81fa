package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/fish_sales_app/internal/middleware"
	"github.com/google/uuid"
)

// OperationObserver is notified of every ledger mutation attempt.
type OperationObserver interface {
	ObserveLedgerOperation(operation string, err error)
}

// BaseService provides common functionality for all services
type BaseService struct {
	Observer OperationObserver
	Now      func() time.Time
	NewID    func() string
}

func newBaseService() BaseService {
	return BaseService{
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: uuid.NewString,
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

func (s *BaseService) observe(operation string, err error) {
	if s.Observer != nil {
		s.Observer.ObserveLedgerOperation(operation, err)
	}
}
