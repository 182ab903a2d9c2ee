package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sit-project/sit-api/internal/pkg/metrics"
)

type ExpiredTokenRepository interface {
	DeleteExpired(ctx context.Context, now time.Time, batchSize int) (int64, error)
}

type ReadNotificationRepository interface {
	DeleteReadBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error)
}

// CleanupService purges rows that are no longer useful.
type CleanupService struct {
	tokens        ExpiredTokenRepository
	notifications ReadNotificationRepository
	batchSize     int
	retention     time.Duration
	now           func() time.Time
}

func NewCleanupService(tokens ExpiredTokenRepository, notifications ReadNotificationRepository, batchSize int, retention time.Duration) *CleanupService {
	return &CleanupService{
		tokens:        tokens,
		notifications: notifications,
		batchSize:     batchSize,
		retention:     retention,
		now:           time.Now,
	}
}

func (s *CleanupService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	n, err := s.tokens.DeleteExpired(ctx, s.now(), s.batchSize)
	metrics.JobDeletedRows.WithLabelValues("expired_tokens").Add(float64(n))
	if err != nil {
		return n, fmt.Errorf("s.tokens.DeleteExpired -> %w", err)
	}

	return n, nil
}

// PurgeReadNotifications deletes read notifications older than the retention.
func (s *CleanupService) PurgeReadNotifications(ctx context.Context) (int64, error) {
	n, err := s.notifications.DeleteReadBefore(ctx, s.now().Add(-s.retention), s.batchSize)
	metrics.JobDeletedRows.WithLabelValues("read_notifications").Add(float64(n))
	if err != nil {
		return n, fmt.Errorf("s.notifications.DeleteReadBefore -> %w", err)
	}

	return n, nil
}

// Run executes both purges. The second runs even if the first fails.
func (s *CleanupService) Run(ctx context.Context) error {
	tokens, tokErr := s.PurgeExpiredTokens(ctx)
	notifications, notErr := s.PurgeReadNotifications(ctx)

	zap.L().Info("cleanup finished",
		zap.Int64("tokens", tokens),
		zap.Int64("notifications", notifications),
	)

	if tokErr != nil {
		return tokErr
	}
	return notErr
}
