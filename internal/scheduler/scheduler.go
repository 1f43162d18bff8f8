package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"newsintel/internal/config"
	"newsintel/internal/domain"
)

// Pipeline defines the interface for pipeline runs.
type Pipeline interface {
	Run(ctx context.Context) (*domain.RunReport, error)
}

// DigestComposer defines the interface for digest assembly.
type DigestComposer interface {
	Compose(ctx context.Context, digestType domain.DigestType, now time.Time) (*domain.Digest, error)
}

type Scheduler struct {
	pipeline Pipeline
	composer DigestComposer
	cfg      config.ScheduleConfig
	logger   *slog.Logger
}

func NewScheduler(pipeline Pipeline, composer DigestComposer, cfg config.ScheduleConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pipeline: pipeline,
		composer: composer,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start runs one pipeline cycle immediately, then hands control to cron until
// ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"pipeline_cron", s.cfg.PipelineCron,
		"daily_digest_cron", s.cfg.DailyDigestCron,
		"weekly_digest_cron", s.cfg.WeeklyDigestCron,
	)

	s.runPipeline(ctx)

	c := cron.New()
	if _, err := c.AddFunc(s.cfg.PipelineCron, func() { s.runPipeline(ctx) }); err != nil {
		return fmt.Errorf("schedule pipeline: %w", err)
	}
	if _, err := c.AddFunc(s.cfg.DailyDigestCron, func() { s.runDigest(ctx, domain.DigestDaily) }); err != nil {
		return fmt.Errorf("schedule daily digest: %w", err)
	}
	if _, err := c.AddFunc(s.cfg.WeeklyDigestCron, func() { s.runDigest(ctx, domain.DigestWeekly) }); err != nil {
		return fmt.Errorf("schedule weekly digest: %w", err)
	}
	c.Start()

	<-ctx.Done()
	s.logger.Info("scheduler stopped")
	stopCtx := c.Stop()
	<-stopCtx.Done()
	return ctx.Err()
}

func (s *Scheduler) runPipeline(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	if _, err := s.pipeline.Run(runCtx); err != nil {
		s.logger.Error("pipeline run failed", "error", err)
	}
}

func (s *Scheduler) runDigest(ctx context.Context, digestType domain.DigestType) {
	runCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	if _, err := s.composer.Compose(runCtx, digestType, time.Now()); err != nil {
		s.logger.Error("digest composition failed", "type", digestType, "error", err)
	}
}
