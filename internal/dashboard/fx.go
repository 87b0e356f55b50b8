package dashboard

import (
	"github.com/slzdigital/catalogo/internal/dashboard/repository"
	"github.com/slzdigital/catalogo/internal/dashboard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dashboard.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
