package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"solar-map/internal/domain/usecase/mapview"
	"solar-map/pkg/log"
	"solar-map/pkg/msg"
)

// CacheWarmUpScheduler periodically recomposes every map into the cache
type CacheWarmUpScheduler struct {
	cron           *cron.Cron
	useCase        mapview.UseCase
	cronExpression string
	timeout        time.Duration
}

// NewCacheWarmUpScheduler creates a scheduler; runs are cut off after timeout (default 5 minutes)
func NewCacheWarmUpScheduler(useCase mapview.UseCase, cronExpression string, timeout time.Duration) *CacheWarmUpScheduler {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &CacheWarmUpScheduler{
		cron:           cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		useCase:        useCase,
		cronExpression: cronExpression,
		timeout:        timeout,
	}
}

// InitCacheWarmUpTasks registers the warm-up job and starts the cron. The job also runs once
// right away so the cache is populated before the first schedule fires.
func (s *CacheWarmUpScheduler) InitCacheWarmUpTasks(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cronExpression, func() { s.ExecuteScheduledTask(ctx) })
	if err != nil {
		log.Error(msg.GetMessage("schedule.warmup-invalid", s.cronExpression, err))
		return fmt.Errorf("schedule warm-up %q: %w", s.cronExpression, err)
	}

	s.cron.Start()
	log.Info(msg.GetMessage("schedule.warmup-started", s.cronExpression))

	go s.ExecuteScheduledTask(ctx)
	return nil
}

// ExecuteScheduledTask runs a single warm-up
func (s *CacheWarmUpScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("schedule.warmup-triggered"), zap.String("request_id", requestID))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	stored, err := s.useCase.WarmUp(ctx, requestID)
	if err != nil {
		log.Error(msg.GetMessage("schedule.warmup-fail", err), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	elapsed := time.Since(start)
	log.Info(msg.GetMessage("schedule.warmup-done", stored, elapsed),
		zap.String("request_id", requestID),
		zap.Int("stored", stored),
		zap.Duration("elapsed", elapsed),
	)
}

// Stop gracefully stops the scheduler, waiting for a running job
func (s *CacheWarmUpScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		log.Info(msg.GetMessage("schedule.warmup-stopped"))
	}
}
