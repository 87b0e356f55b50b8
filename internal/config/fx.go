package config

import "go.uber.org/fx"

// Module provides the application configuration, failing fast when required
// values are missing.
var Module = fx.Module("config",
	fx.Provide(Load),
)
