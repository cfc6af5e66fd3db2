package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/staffhub/internal/clock"
	"github.com/smallbiznis/staffhub/internal/config"
	"github.com/smallbiznis/staffhub/internal/migration"
	"github.com/smallbiznis/staffhub/internal/observability"
	"github.com/smallbiznis/staffhub/internal/scheduler"
	"github.com/smallbiznis/staffhub/internal/server"
	"github.com/smallbiznis/staffhub/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
		scheduler.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
