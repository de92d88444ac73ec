package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"lawconnect.backend/pkg/logger"
)

type otpExpiryRepository interface {
	DeleteExpired(ctx context.Context, notBefore time.Time) (int64, error)
}

// OTPExpiryJob deletes signup codes older than the TTL
type OTPExpiryJob struct {
	repo     otpExpiryRepository
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewOTPExpiryJob(repo otpExpiryRepository, ttl, interval time.Duration) *OTPExpiryJob {
	return &OTPExpiryJob{
		repo:     repo,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Start blocks until ctx is cancelled or Stop is called.
func (j *OTPExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting OTP expiry job", zap.Duration("interval", j.interval), zap.Duration("ttl", j.ttl))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "OTP expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "OTP expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *OTPExpiryJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *OTPExpiryJob) sweep(ctx context.Context) {
	removed, err := j.repo.DeleteExpired(ctx, j.now().Add(-j.ttl))
	if err != nil {
		logger.Error(ctx, "Failed to delete expired OTPs", zap.Error(err))
		return
	}
	if removed > 0 {
		logger.Debug(ctx, "Deleted expired OTPs", zap.Int64("count", removed))
	}
}
