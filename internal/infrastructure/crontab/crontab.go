package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"aitoolhub-server/services/hub-api/internal/config"
	"aitoolhub-server/services/hub-api/internal/domain/reward"
	"aitoolhub-server/services/hub-api/internal/domain/session"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
	"aitoolhub-server/services/hub-api/internal/infrastructure/metrics"
	"aitoolhub-server/services/hub-api/internal/utils/platformerrors"
)

const (
	DefaultSweepInterval = 15 // in minutes
	CronJobTimeout       = 5 * time.Minute
	// RewardRetention keeps a month of reward-day history for support queries.
	RewardRetention = 30 * 24 * time.Hour
)

type Crontab struct {
	ctab           *crontab.Crontab
	sessionService *session.Service
	rewardService  *reward.Service
}

func NewCrontab(
	sessionService *session.Service,
	rewardService *reward.Service,
) *Crontab {
	return &Crontab{
		ctab:           crontab.New(),
		sessionService: sessionService,
		rewardService:  rewardService,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()
	cfg := config.GetGlobal()

	sweepInterval := DefaultSweepInterval
	if cfg != nil && cfg.SessionSweepIntervalMinutes > 0 {
		sweepInterval = cfg.SessionSweepIntervalMinutes
	}

	cronExpr := fmt.Sprintf("*/%d * * * *", sweepInterval)
	if err := c.ctab.AddJob(cronExpr, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
		defer cancel()
		c.sweepSessions(jobCtx)
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add session sweep job")
	}
	log.Info().Msgf("Session sweep scheduled: every %d minute(s)", sweepInterval)

	if cfg == nil || cfg.RewardCleanupEnabled {
		// Daily at 03:10, off-peak.
		if err := c.ctab.AddJob("10 3 * * *", func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.cleanupRewardDays(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add reward cleanup job")
		}
		log.Info().Msg("Reward day cleanup scheduled: daily")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) sweepSessions(ctx context.Context) {
	log := logger.GetLogger()
	removed, err := c.sessionService.SweepExpired(ctx)
	if err != nil {
		log.Error().
			Str("error_code", "41d8c2f6-9e05-4a73-b618-2c5f0d9e7a34").
			Err(err).
			Msg("session sweep failed")
		return
	}
	if removed > 0 {
		metrics.SessionsActiveSweepTotal.Add(float64(removed))
		log.Info().Int("removed", removed).Msg("expired sessions swept")
	}
}

func (c *Crontab) cleanupRewardDays(ctx context.Context) {
	log := logger.GetLogger()
	removed, err := c.rewardService.CleanupBefore(ctx, RewardRetention)
	if err != nil {
		log.Error().
			Str("error_code", "b95f3a07-4d21-4e86-a3c9-06e8d1f7c250").
			Err(err).
			Msg("reward day cleanup failed")
		return
	}
	if removed > 0 {
		log.Info().Int64("removed", removed).Msg("old reward days removed")
	}
}
