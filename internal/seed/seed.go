package seed

import (
	"context"
	"errors"

	referencedomain "github.com/slzdigital/catalogo/internal/reference/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var catalogCategories = []referencedomain.Category{
	{Code: "novidades", Name: "Novidades"},
	{Code: "destaques", Name: "Destaques"},
	{Code: "mais-usados", Name: "Mais Usados"},
	{Code: "cidadao", Name: "Para o Cidadão"},
	{Code: "interno", Name: "Uso Interno"},
	{Code: "por-secretaria", Name: "Por Secretaria"},
}

var secretaries = []referencedomain.Secretary{
	{Code: "SEMUS", Name: "Secretaria Municipal de Saúde"},
	{Code: "SEMED", Name: "Secretaria Municipal de Educação"},
	{Code: "SEMFAZ", Name: "Secretaria Municipal da Fazenda"},
	{Code: "SEMURH", Name: "Secretaria Municipal de Urbanismo e Habitação"},
	{Code: "SMTT", Name: "Secretaria Municipal de Trânsito e Transporte"},
	{Code: "SEMMAM", Name: "Secretaria Municipal de Meio Ambiente"},
	{Code: "SEMCAS", Name: "Secretaria Municipal da Criança e Assistência Social"},
	{Code: "SEMAPA", Name: "Secretaria Municipal de Agricultura, Pesca e Abastecimento"},
	{Code: "SEMOSP", Name: "Secretaria Municipal de Obras e Serviços Públicos"},
	{Code: "SEMIT", Name: "Secretaria Municipal de Inovação e Tecnologia"},
	{Code: "SEPLAN", Name: "Secretaria Municipal de Planejamento"},
}

// EnsureReferenceData idempotently seeds the catalog categories and the
// secretary registry after migrations run.
func EnsureReferenceData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&catalogCategories).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&secretaries).Error
	})
}
