package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/redact"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// DefaultErrorLogTimeout bounds a single audit write.
const DefaultErrorLogTimeout = 2 * time.Second

// ErrorRecorder appends failed operations to the audit trail.
type ErrorRecorder interface {
	// Log records a failure. It never returns an error and never panics.
	Log(ctx context.Context, endpoint, message string, errorType domain.ErrorType)
}

// ErrorLogService records failures and lists the audit trail.
type ErrorLogService interface {
	ErrorRecorder

	// ListErrorLogs returns every entry, newest first.
	ListErrorLogs(ctx context.Context) ([]*domain.ErrorLog, error)
}

type errorLogServiceImpl struct {
	logs    store.ErrorLogStore
	timeout time.Duration
	now     Clock
	logger  *slog.Logger
}

// NewErrorLogService creates an ErrorLogService. Writes run on a context
// detached from the caller's cancellation and bounded by timeout.
func NewErrorLogService(
	logs store.ErrorLogStore,
	timeout time.Duration,
	clock Clock,
	logger *slog.Logger,
) ErrorLogService {
	if timeout <= 0 {
		timeout = DefaultErrorLogTimeout
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &errorLogServiceImpl{
		logs:    logs,
		timeout: timeout,
		now:     clock,
		logger:  logger.With("component", "error_logger"),
	}
}

func (s *errorLogServiceImpl) Log(ctx context.Context, endpoint, message string, errorType domain.ErrorType) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("error log write panicked",
				"endpoint", endpoint,
				"panic", fmt.Sprint(r))
		}
	}()

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	entry := domain.NewErrorLog(endpoint, redact.String(message), errorType, s.now())
	if err := s.logs.Create(writeCtx, entry); err != nil {
		s.logger.Error("failed to record error log",
			"endpoint", endpoint,
			"error_type", string(errorType),
			"error", redact.Error(err))
	}
}

func (s *errorLogServiceImpl) ListErrorLogs(ctx context.Context) ([]*domain.ErrorLog, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		s.logger.Error("failed to list error logs", "error", err)
		return nil, NewServiceError("list_error_logs", "failed to list error logs", err)
	}
	return entries, nil
}
