package migration

import (
	"github.com/slzdigital/catalogo/internal/config"
	referencedomain "github.com/slzdigital/catalogo/internal/reference/domain"
	reviewdomain "github.com/slzdigital/catalogo/internal/review/domain"
	"github.com/slzdigital/catalogo/internal/seed"
	systemdomain "github.com/slzdigital/catalogo/internal/system/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(Prepare),
)

// Prepare brings the schema up to date and seeds the reference data. The
// golang-migrate driver targets postgres; other dialects (local sqlite or
// mysql development) fall back to gorm's AutoMigrate so the seed always has
// its tables.
func Prepare(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
	if cfg.DBType == "postgres" {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := RunMigrations(sqlDB); err != nil {
			return err
		}
	} else {
		log.Info("versioned migrations support postgres only, using schema sync",
			zap.String("database_type", cfg.DBType))
		if err := conn.AutoMigrate(
			&referencedomain.Category{},
			&referencedomain.Secretary{},
			&systemdomain.System{},
			&systemdomain.SystemFeature{},
			&systemdomain.Review{},
			&reviewdomain.Demographics{},
		); err != nil {
			return err
		}
	}

	return seed.EnsureReferenceData(conn)
}
