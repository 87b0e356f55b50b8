package review

import (
	"github.com/slzdigital/catalogo/internal/review/repository"
	"github.com/slzdigital/catalogo/internal/review/service"
	"go.uber.org/fx"
)

var Module = fx.Module("review.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
