package system

import (
	"github.com/slzdigital/catalogo/internal/system/repository"
	"github.com/slzdigital/catalogo/internal/system/service"
	"go.uber.org/fx"
)

var Module = fx.Module("system.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
