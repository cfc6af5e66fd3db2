package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/smallbiznis/staffhub/internal/auth/domain"
	"github.com/smallbiznis/staffhub/internal/clock"
	obscontext "github.com/smallbiznis/staffhub/internal/observability/context"
	obslogger "github.com/smallbiznis/staffhub/internal/observability/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const jobPurgeTokens = "purge_api_tokens"

var ErrInvalidConfig = errors.New("invalid_scheduler_config")

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Config Config `optional:"true"`
}

// Scheduler runs housekeeping jobs on a fixed interval.
type Scheduler struct {
	db    *gorm.DB
	log   *zap.Logger
	cfg   Config
	genID *snowflake.Node
	clock clock.Clock
}

func New(p Params) (*Scheduler, error) {
	if p.DB == nil || p.Log == nil || p.GenID == nil || p.Clock == nil {
		return nil, ErrInvalidConfig
	}
	return &Scheduler{
		db:    p.DB,
		log:   p.Log.Named("scheduler").With(zap.String("component", "scheduler")),
		cfg:   p.Config.withDefaults(),
		genID: p.GenID,
		clock: p.Clock,
	}, nil
}

func (s *Scheduler) runJob(parent context.Context, name string, timeout time.Duration, fn func(ctx context.Context) error) error {
	start := s.clock.Now()
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	runID := s.genID.Generate().String()
	ctx = obscontext.WithActor(ctx, "system", "scheduler")
	ctx = obscontext.WithRequestID(ctx, runID)
	log := obslogger.WithContext(ctx, s.log).With(zap.String("job", name))

	err := fn(ctx)
	log.Debug("job finished", zap.Duration("duration", s.clock.Now().Sub(start)))
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		log.Warn("job timed out", zap.Duration("timeout", timeout), zap.Error(err))
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

func (s *Scheduler) RunOnce(parent context.Context) error {
	return s.runJob(parent, jobPurgeTokens, s.cfg.JobTimeout, s.PurgeTokensJob)
}

func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.RunInterval)
	defer ticker.Stop()

	for {
		if err := s.RunOnce(ctx); err != nil {
			s.log.Warn("scheduler run failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// PurgeTokensJob deletes API tokens that expired or were revoked longer ago
// than the retention window.
func (s *Scheduler) PurgeTokensJob(ctx context.Context) error {
	cutoff := s.clock.Now().Add(-s.cfg.TokenRetention)

	result := s.db.WithContext(ctx).
		Where("(expires_at IS NOT NULL AND expires_at < ?) OR (revoked_at IS NOT NULL AND revoked_at < ?)", cutoff, cutoff).
		Delete(&authdomain.APIToken{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		obslogger.WithContext(ctx, s.log).Info("purged api tokens",
			zap.Int64("count", result.RowsAffected),
			zap.Time("cutoff", cutoff),
		)
	}
	return nil
}
