package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/slzdigital/catalogo/internal/clock"
	"github.com/slzdigital/catalogo/internal/config"
	"github.com/slzdigital/catalogo/internal/migration"
	"github.com/slzdigital/catalogo/internal/observability"
	"github.com/slzdigital/catalogo/internal/server"
	"github.com/slzdigital/catalogo/pkg/db"
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
