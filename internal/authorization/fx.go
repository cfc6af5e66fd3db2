package authorization

import (
	"context"

	"github.com/casbin/casbin/v2"
	"github.com/smallbiznis/staffhub/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("authorization",
	fx.Provide(NewEnforcer),
	fx.Provide(NewService),
	fx.Invoke(registerLifecycle),
)

// registerLifecycle resyncs the policy from the access tables at start and
// periodically reloads it so grants made by other instances are picked up.
func registerLifecycle(lc fx.Lifecycle, cfg config.Config, svc Service, enforcer *casbin.SyncedEnforcer, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := svc.Sync(ctx); err != nil {
				return err
			}
			if cfg.Auth.PolicyReloadInterval > 0 {
				enforcer.StartAutoLoadPolicy(cfg.Auth.PolicyReloadInterval)
				log.Info("authorization policy auto reload", zap.Duration("interval", cfg.Auth.PolicyReloadInterval))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			enforcer.StopAutoLoadPolicy()
			return nil
		},
	})
}
