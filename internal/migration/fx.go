package migration

import (
	"github.com/smallbiznis/staffhub/internal/config"
	"github.com/smallbiznis/staffhub/internal/resource"
	"github.com/smallbiznis/staffhub/internal/seed"
	"github.com/smallbiznis/staffhub/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Conn      *gorm.DB
	Cfg       config.Config
	DBCfg     db.Config
	Log       *zap.Logger
	Endpoints []resource.Endpoint `group:"endpoints"`
}

var Module = fx.Module("migrations",
	fx.Invoke(func(p Params) error {
		log := p.Log.Named("migrations")

		if p.DBCfg.IsPostgres() {
			sqlDB, err := p.Conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else if err := AutoMigrate(p.Conn, p.Endpoints); err != nil {
			return err
		}
		log.Info("schema ready", zap.String("dialect", p.DBCfg.Type))

		if !p.Cfg.Bootstrap.Enabled() {
			return nil
		}
		return seed.EnsureAdmin(p.Conn, seed.Admin{
			Name:     p.Cfg.Bootstrap.AdminName,
			Email:    p.Cfg.Bootstrap.AdminEmail,
			Password: p.Cfg.Bootstrap.AdminPassword,
		})
	}),
)
